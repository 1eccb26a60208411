package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func runTokensCommand(t *testing.T, cmdArgs ...string) (string, error) {
	t.Helper()
	cmd := NewTokensCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(cmdArgs)
	err := cmd.Execute()
	return buf.String(), err
}

func TestTokensDump(t *testing.T) {
	path := writeWob(t, "hello.wob", "main\nlet x = 1\nend\n")

	out, err := runTokensCommand(t, path)
	if err != nil {
		t.Fatalf("tokens failed: %v", err)
	}

	for _, want := range []string{"MAIN", "LET", "IDENTIFIER", "INT_LITERAL", "END", "EOF"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %s:\n%s", want, out)
		}
	}
	// Trivia is filtered by default.
	if strings.Contains(out, "WHITESPACE") || strings.Contains(out, "NEWLINE") {
		t.Errorf("trivia shown without --trivia:\n%s", out)
	}
}

func TestTokensWithTrivia(t *testing.T) {
	path := writeWob(t, "hello.wob", "main\nend\n")

	out, err := runTokensCommand(t, path, "--trivia")
	if err != nil {
		t.Fatalf("tokens --trivia failed: %v", err)
	}
	if !strings.Contains(out, "NEWLINE") {
		t.Errorf("--trivia should show newline tokens:\n%s", out)
	}
}

func TestTokensJSON(t *testing.T) {
	path := writeWob(t, "hello.wob", "main\nend\n")

	out, err := runTokensCommand(t, path, "--json")
	if err != nil {
		t.Fatalf("tokens --json failed: %v", err)
	}

	var dump []struct {
		Type   string `json:"type"`
		Lexeme string `json:"lexeme"`
		Span   string `json:"span"`
	}
	if jsonErr := json.Unmarshal([]byte(out), &dump); jsonErr != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", jsonErr, out)
	}
	if len(dump) == 0 {
		t.Fatal("empty token dump")
	}
	if dump[0].Type != "MAIN" || dump[0].Lexeme != "main" {
		t.Errorf("first token = %+v, want main", dump[0])
	}
}

func TestTokensNotesLexDiagnostics(t *testing.T) {
	path := writeWob(t, "bad.wob", "let s = \"oops\nend\n")

	out, err := runTokensCommand(t, path)
	if err != nil {
		t.Fatalf("tokens should not fail on lex errors: %v", err)
	}
	if !strings.Contains(out, "diagnostic(s) during lexing") {
		t.Errorf("missing diagnostics note:\n%s", out)
	}
}
