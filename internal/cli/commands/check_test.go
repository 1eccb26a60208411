package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeWob(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// runCommand keeps stdout separate from stderr: when a check fails,
// cobra writes its own error and usage text to stderr, which must not
// bleed into output the tests parse.
func runCommand(t *testing.T, cmdArgs ...string) (string, error) {
	t.Helper()
	cmd := NewCheckCommand()
	// The root command silences cobra's own error/usage output; mirror
	// that here so the standalone subcommand behaves the same way.
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(cmdArgs)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheckCleanFile(t *testing.T) {
	path := writeWob(t, "clean.wob", "main\nlet x = 1\nprintln(x)\nend\n")

	out, err := runCommand(t, path, "--no-color")
	if err != nil {
		t.Fatalf("clean file produced error: %v\n%s", err, out)
	}
	if !strings.Contains(out, "no problems found") {
		t.Errorf("missing success line:\n%s", out)
	}
	if !strings.Contains(out, "stability: 100/100 (rock-solid)") {
		t.Errorf("missing stability line:\n%s", out)
	}
}

func TestCheckBrokenFile(t *testing.T) {
	path := writeWob(t, "broken.wob", "main\nlet s = \"hello\nend\n")

	out, err := runCommand(t, path, "--no-color")
	if err == nil {
		t.Fatal("broken file should make check fail")
	}
	if !strings.Contains(err.Error(), "error(s)") {
		t.Errorf("error = %v, want an error count", err)
	}
	if !strings.Contains(out, "error[E0002]") {
		t.Errorf("diagnostic not rendered:\n%s", out)
	}
	if !strings.Contains(out, `let s = "hello`) {
		t.Errorf("source line not echoed:\n%s", out)
	}
}

func TestCheckJSONOutput(t *testing.T) {
	path := writeWob(t, "broken.wob", "main\nlet s = \"hello\nend\n")

	out, err := runCommand(t, path, "--json")
	if err == nil {
		t.Fatal("broken file should make check fail even in JSON mode")
	}

	var report struct {
		Status string `json:"status"`
		Errors []struct {
			Code string `json:"code"`
		} `json:"errors"`
	}
	if jsonErr := json.Unmarshal([]byte(out), &report); jsonErr != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", jsonErr, out)
	}
	if report.Status != "error" {
		t.Errorf("status = %q, want error", report.Status)
	}
	if len(report.Errors) == 0 || report.Errors[0].Code != "E0002" {
		t.Errorf("errors = %+v, want an E0002", report.Errors)
	}
}

func TestCheckMissingFile(t *testing.T) {
	_, err := runCommand(t, "does-not-exist.wob")
	if err == nil || !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("error = %v, want a read failure", err)
	}
}

func TestCheckMultipleFilesGetHeaders(t *testing.T) {
	a := writeWob(t, "a.wob", "main\nend\n")
	b := writeWob(t, "b.wob", "main\nend\n")

	out, err := runCommand(t, a, b, "--no-color")
	if err != nil {
		t.Fatalf("clean files produced error: %v", err)
	}
	if !strings.Contains(out, a) || !strings.Contains(out, b) {
		t.Errorf("per-file headers missing:\n%s", out)
	}
}

func TestCheckRequiresArguments(t *testing.T) {
	_, err := runCommand(t)
	if err == nil {
		t.Error("expected error when no files are given")
	}
}
