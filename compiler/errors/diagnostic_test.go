package errors

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/wobble-lang/wobble/compiler/source"
)

func spanAt(line, col, offset int) source.Span {
	return source.PointSpan(source.Position{Line: line, Column: col, Offset: offset})
}

func TestNewFillsPedagogicalFields(t *testing.T) {
	d := New(ErrUnterminatedString, Error, "unterminated string literal: hit newline", spanAt(3, 9, 20))

	if d.LearningObjective == "" || d.RecoveryHint == "" {
		t.Error("catalog fields were not filled in")
	}
	if d.CurriculumLesson != 1 {
		t.Errorf("lesson = %d, want 1", d.CurriculumLesson)
	}
}

func TestNewWithUnknownCodeLeavesFieldsEmpty(t *testing.T) {
	d := New(Code("E0150"), Error, "not implemented", spanAt(1, 1, 0))

	if d.LearningObjective != "" || d.RecoveryHint != "" || d.CurriculumLesson != 0 {
		t.Error("unknown code should not pick up catalog fields")
	}
}

func TestIsError(t *testing.T) {
	tests := []struct {
		severity Severity
		want     bool
	}{
		{Hint, false},
		{Info, false},
		{Warning, false},
		{Error, true},
		{Fatal, true},
	}

	for _, tt := range tests {
		d := Diagnostic{Severity: tt.severity}
		if d.IsError() != tt.want {
			t.Errorf("IsError(%s) = %v, want %v", tt.severity, d.IsError(), tt.want)
		}
	}
}

func TestCountErrors(t *testing.T) {
	diags := []Diagnostic{
		{Severity: Warning},
		{Severity: Error},
		{Severity: Hint},
		{Severity: Fatal},
	}
	if got := CountErrors(diags); got != 2 {
		t.Errorf("CountErrors = %d, want 2", got)
	}
}

func TestSortBySpan(t *testing.T) {
	diags := []Diagnostic{
		{Code: "E0001", Span: spanAt(3, 1, 30)},
		{Code: "E0002", Span: spanAt(1, 1, 0)},
		{Code: "E0003", Span: spanAt(2, 5, 14)},
	}
	SortBySpan(diags)

	want := []Code{"E0002", "E0003", "E0001"}
	for i, w := range want {
		if diags[i].Code != w {
			t.Errorf("position %d = %s, want %s", i, diags[i].Code, w)
		}
	}
}

func TestDiagnosticError(t *testing.T) {
	d := New(ErrIllegalCharacter, Error, "illegal character '@'", spanAt(2, 5, 10))

	msg := d.Error()
	if !strings.Contains(msg, "2:5") || !strings.Contains(msg, "E0004") {
		t.Errorf("Error() = %q, want position and code present", msg)
	}
}

func TestSeverityJSONRoundTrip(t *testing.T) {
	for _, s := range []Severity{Hint, Info, Warning, Error, Fatal} {
		data, err := json.Marshal(s)
		if err != nil {
			t.Fatalf("marshal %s: %v", s, err)
		}
		var back Severity
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if back != s {
			t.Errorf("round trip %s -> %s", s, back)
		}
	}
}

func TestUnknownSeverityDecodesAsError(t *testing.T) {
	var s Severity
	if err := json.Unmarshal([]byte(`"catastrophic"`), &s); err != nil {
		t.Fatal(err)
	}
	if s != Error {
		t.Errorf("got %s, want error", s)
	}
}

func TestJSONOutputShape(t *testing.T) {
	diags := []Diagnostic{
		New(ErrUnterminatedString, Error, "unterminated", spanAt(1, 1, 0)),
		New(ErrSymbolicLogicalOp, Warning, "use `and`", spanAt(2, 1, 10)),
	}

	text, err := FormatAsJSON(diags)
	if err != nil {
		t.Fatal(err)
	}

	var out struct {
		Status   string            `json:"status"`
		Errors   []json.RawMessage `json:"errors"`
		Warnings []json.RawMessage `json:"warnings"`
		Summary  struct {
			ErrorCount   int `json:"error_count"`
			WarningCount int `json:"warning_count"`
			TotalCount   int `json:"total_count"`
		} `json:"summary"`
	}
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if out.Status != "error" {
		t.Errorf("status = %q, want error", out.Status)
	}
	if len(out.Errors) != 1 || len(out.Warnings) != 1 {
		t.Errorf("split = %d errors / %d warnings, want 1 / 1", len(out.Errors), len(out.Warnings))
	}
	if out.Summary.ErrorCount != 1 || out.Summary.WarningCount != 1 || out.Summary.TotalCount != 2 {
		t.Errorf("summary = %+v", out.Summary)
	}
}

func TestJSONOutputStatusLevels(t *testing.T) {
	if text, _ := FormatAsJSONCompact(nil); !strings.Contains(text, `"status":"success"`) {
		t.Errorf("empty diagnostics: %s", text)
	}

	warnOnly := []Diagnostic{{Severity: Warning}}
	if text, _ := FormatAsJSONCompact(warnOnly); !strings.Contains(text, `"status":"warning"`) {
		t.Errorf("warnings only: %s", text)
	}
}

func TestDiagnosticFieldNamesAreStable(t *testing.T) {
	d := New(ErrUnterminatedString, Error, "msg", spanAt(1, 2, 1))
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}

	for _, field := range []string{`"code"`, `"severity"`, `"message"`, `"span"`, `"learningObjective"`, `"recoveryHint"`, `"curriculumLesson"`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("serialized diagnostic is missing %s: %s", field, data)
		}
	}
}
