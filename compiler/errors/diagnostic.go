// Package errors defines the structured diagnostic model shared by the
// lexer, parser, and error-injection engine.
//
// Diagnostics are a side channel, not a failure signal: the lexer and
// parser accumulate them and always return a best-effort result. Malformed
// input never surfaces as a Go error.
package errors

import (
	"fmt"
	"sort"

	"github.com/wobble-lang/wobble/compiler/source"
)

// Diagnostic is a single pedagogical error record. Field names are a
// frozen serialization contract with the presentation layer.
type Diagnostic struct {
	Code              Code        `json:"code"`
	Severity          Severity    `json:"severity"`
	Message           string      `json:"message"`
	Span              source.Span `json:"span"`
	LearningObjective string      `json:"learningObjective,omitempty"`
	RecoveryHint      string      `json:"recoveryHint,omitempty"`
	CurriculumLesson  int         `json:"curriculumLesson,omitempty"`
}

// New builds a diagnostic for a known code, pulling the learning objective,
// recovery hint, and lesson number from the code catalog.
func New(code Code, severity Severity, message string, span source.Span) Diagnostic {
	d := Diagnostic{
		Code:     code,
		Severity: severity,
		Message:  message,
		Span:     span,
	}
	if info, ok := Lookup(code); ok {
		d.LearningObjective = info.LearningObjective
		d.RecoveryHint = info.RecoveryHint
		d.CurriculumLesson = info.CurriculumLesson
	}
	return d
}

// Error implements the error interface so diagnostics can cross boundaries
// that expect one. The compiler itself never propagates them this way.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("%d:%d: %s: %s", d.Span.Start.Line, d.Span.Start.Column, d.Code, d.Message)
}

// IsError reports whether the diagnostic is Error severity or worse.
func (d Diagnostic) IsError() bool {
	return d.Severity >= Error
}

// SortBySpan orders diagnostics by source position. Lexer and parser
// diagnostics are concatenated per phase, not globally sorted; callers
// that need strict source order use this.
func SortBySpan(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		if diags[i].Span.Start.Offset != diags[j].Span.Start.Offset {
			return diags[i].Span.Start.Offset < diags[j].Span.Start.Offset
		}
		return diags[i].Severity > diags[j].Severity
	})
}

// CountErrors returns how many diagnostics are Error severity or worse.
func CountErrors(diags []Diagnostic) int {
	n := 0
	for _, d := range diags {
		if d.IsError() {
			n++
		}
	}
	return n
}
