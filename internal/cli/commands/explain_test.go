package commands

import (
	"bytes"
	"strings"
	"testing"
)

func runExplainCommand(t *testing.T, cmdArgs ...string) (string, string, error) {
	t.Helper()
	cmd := NewExplainCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(cmdArgs)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestExplainKnownCode(t *testing.T) {
	out, _, err := runExplainCommand(t, "E0002")
	if err != nil {
		t.Fatalf("explain E0002 failed: %v", err)
	}

	for _, want := range []string{
		"E0002:",
		"band: lexical/syntax",
		"What you are learning:",
		"How to fix it:",
		"Covered in: lesson 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestExplainNormalizesShorthand(t *testing.T) {
	full, _, err := runExplainCommand(t, "E0007")
	if err != nil {
		t.Fatal(err)
	}
	short, _, err := runExplainCommand(t, "e7")
	if err != nil {
		t.Fatal(err)
	}
	if full != short {
		t.Errorf("e7 and E0007 rendered differently:\n%s\n%s", short, full)
	}
}

func TestExplainUnknownCodeSuggests(t *testing.T) {
	_, errOut, err := runExplainCommand(t, "E0099")
	if err == nil {
		t.Fatal("unknown code should fail")
	}
	if !strings.Contains(errOut, "unknown error code: E0099") {
		t.Errorf("stderr missing lead line:\n%s", errOut)
	}
	if !strings.Contains(errOut, "Did you mean") {
		t.Errorf("stderr missing suggestions:\n%s", errOut)
	}
}

func TestExplainList(t *testing.T) {
	out, _, err := runExplainCommand(t, "--list")
	if err != nil {
		t.Fatalf("explain --list failed: %v", err)
	}

	for _, code := range []string{"E0001", "E0005", "E0010"} {
		if !strings.Contains(out, code) {
			t.Errorf("list missing %s:\n%s", code, out)
		}
	}
}

func TestExplainWithoutArguments(t *testing.T) {
	_, _, err := runExplainCommand(t)
	if err == nil {
		t.Error("expected error when neither a code nor --list is given")
	}
}
