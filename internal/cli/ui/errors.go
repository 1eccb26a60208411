package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/wobble-lang/wobble/compiler/errors"
)

// RenderOptions configures diagnostic rendering
type RenderOptions struct {
	// Source is the text the diagnostics refer to; when present the
	// offending line is echoed with a caret under the start column.
	Source  string
	NoColor bool
}

// FormatDiagnostic renders one diagnostic for the terminal
//
// Example output:
//
//	error[E0002]: unterminated string literal: hit newline
//	  --> 3:9
//	   |
//	 3 | let s = "hello
//	   |         ^
//	   = hint: Add a closing `"` before the end of the line.
func FormatDiagnostic(d errors.Diagnostic, opts RenderOptions) string {
	var b strings.Builder

	headerColor := severityColor(d.Severity)
	gutterColor := color.New(color.FgBlue, color.Bold)
	hintColor := color.New(color.FgCyan)
	if opts.NoColor {
		headerColor.DisableColor()
		gutterColor.DisableColor()
		hintColor.DisableColor()
	}

	headerColor.Fprintf(&b, "%s[%s]", d.Severity.String(), d.Code)
	fmt.Fprintf(&b, ": %s\n", d.Message)
	gutterColor.Fprint(&b, "  --> ")
	fmt.Fprintf(&b, "%d:%d\n", d.Span.Start.Line, d.Span.Start.Column)

	if line, ok := sourceLine(opts.Source, d.Span.Start.Line); ok {
		prefix := fmt.Sprintf("%2d", d.Span.Start.Line)
		pad := strings.Repeat(" ", len(prefix))
		gutterColor.Fprintf(&b, "%s |\n", pad)
		gutterColor.Fprintf(&b, "%s | ", prefix)
		fmt.Fprintf(&b, "%s\n", line)
		gutterColor.Fprintf(&b, "%s | ", pad)
		fmt.Fprintf(&b, "%s%s\n", strings.Repeat(" ", d.Span.Start.Column-1), caret(d))
	}

	if d.RecoveryHint != "" {
		hintColor.Fprintf(&b, "   = hint: %s\n", d.RecoveryHint)
	}
	if d.LearningObjective != "" {
		hintColor.Fprintf(&b, "   = goal: %s\n", d.LearningObjective)
	}
	if d.CurriculumLesson > 0 {
		hintColor.Fprintf(&b, "   = see lesson %d (wobble explain %s)\n", d.CurriculumLesson, d.Code)
	}

	return b.String()
}

// WriteDiagnostics renders a diagnostic list, one blank line apart
func WriteDiagnostics(w io.Writer, diags []errors.Diagnostic, opts RenderOptions) {
	for i, d := range diags {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprint(w, FormatDiagnostic(d, opts))
	}
}

// FormatStability renders the stability score with its band, colored by
// how bad things are
func FormatStability(score int, band string, noColor bool) string {
	var c *color.Color
	switch {
	case score >= 70:
		c = color.New(color.FgGreen, color.Bold)
	case score >= 30:
		c = color.New(color.FgYellow, color.Bold)
	default:
		c = color.New(color.FgRed, color.Bold)
	}
	if noColor {
		c.DisableColor()
	}
	return c.Sprintf("stability: %d/100 (%s)", score, band)
}

// FormatSuccess creates a success message
func FormatSuccess(message string, noColor bool) string {
	green := color.New(color.FgGreen, color.Bold)
	if noColor {
		green.DisableColor()
	}
	return green.Sprintf("✓ %s", message)
}

// WriteSuccess writes a success message to the writer
func WriteSuccess(w io.Writer, message string, noColor bool) {
	fmt.Fprintln(w, FormatSuccess(message, noColor))
}

// UnknownCodeError renders the message for an error code the catalog
// does not know, with fuzzy suggestions
func UnknownCodeError(raw string, suggestions []string, noColor bool) string {
	var b strings.Builder

	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)
	if noColor {
		red.DisableColor()
		yellow.DisableColor()
		cyan.DisableColor()
	}

	red.Fprintf(&b, "unknown error code: %s\n", raw)
	if len(suggestions) > 0 {
		b.WriteString("\n")
		yellow.Fprintf(&b, "   Did you mean: %s?\n", strings.Join(suggestions, ", "))
	}
	b.WriteString("\n")
	cyan.Fprintf(&b, "   → See all codes: wobble explain --list\n")

	return b.String()
}

func severityColor(s errors.Severity) *color.Color {
	switch s {
	case errors.Error, errors.Fatal:
		return color.New(color.FgRed, color.Bold)
	case errors.Warning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan, color.Bold)
	}
}

func sourceLine(src string, line int) (string, bool) {
	if src == "" || line < 1 {
		return "", false
	}
	lines := strings.Split(src, "\n")
	if line > len(lines) {
		return "", false
	}
	return lines[line-1], true
}

func caret(d errors.Diagnostic) string {
	width := 1
	if d.Span.Start.Line == d.Span.End.Line && d.Span.End.Column > d.Span.Start.Column {
		width = d.Span.End.Column - d.Span.Start.Column
	}
	return strings.Repeat("^", width)
}
