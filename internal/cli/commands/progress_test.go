package commands

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// progressWorkspace points the progress database at the temp directory so
// tests never touch the real attempt history.
func progressWorkspace(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	t.Cleanup(func() { os.Chdir(oldWd) })

	os.WriteFile("wobble.yml", []byte("progress:\n  database: ./attempts.db\n"), 0644)
}

func runProgressCommand(t *testing.T, cmdArgs ...string) (string, error) {
	t.Helper()
	cmd := NewProgressCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(cmdArgs)
	err := cmd.Execute()
	return buf.String(), err
}

func TestProgressRecordAndList(t *testing.T) {
	progressWorkspace(t)
	os.WriteFile("drill.wob", []byte("main\nlet s = \"oops\nend\n"), 0644)

	out, err := runProgressCommand(t, "record", "1", "drill.wob")
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if !strings.Contains(out, "recorded lesson 1 attempt") {
		t.Errorf("missing confirmation:\n%s", out)
	}
	if !strings.Contains(out, "stability 90/100") {
		t.Errorf("one error should score 90:\n%s", out)
	}

	out, err = runProgressCommand(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "LESSON") || !strings.Contains(out, "90 (rock-solid)") {
		t.Errorf("list missing the recorded attempt:\n%s", out)
	}
}

func TestProgressListEmpty(t *testing.T) {
	progressWorkspace(t)

	out, err := runProgressCommand(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "No attempts recorded yet") {
		t.Errorf("missing empty-state message:\n%s", out)
	}
}

func TestProgressRecordRejectsBadLesson(t *testing.T) {
	progressWorkspace(t)
	os.WriteFile("drill.wob", []byte("main\nend\n"), 0644)

	if _, err := runProgressCommand(t, "record", "zero", "drill.wob"); err == nil {
		t.Error("expected error for a non-numeric lesson")
	}
	if _, err := runProgressCommand(t, "record", "42", "drill.wob"); err == nil {
		t.Error("expected error for a lesson the catalog does not have")
	}
}
