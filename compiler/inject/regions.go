package inject

import (
	"strings"

	"github.com/wobble-lang/wobble/compiler/errors"
	"github.com/wobble-lang/wobble/compiler/lexer"
	"github.com/wobble-lang/wobble/compiler/source"
)

// Region is one injectable stretch of source text: everything between a
// `gutter` keyword and its matching `end`.
type Region struct {
	Span source.Span
}

// Regions finds every gutter region in the source, in order of
// appearance. An unterminated gutter extends to end of input. Nested
// block keywords inside the region are depth-tracked so the matching
// `end` is found, mirroring how the parser collects gutter bodies.
func Regions(src string) []Region {
	tokens, _ := lexer.TokenizeFiltered(src)

	var regions []Region
	for i := 0; i < len(tokens); i++ {
		if tokens[i].Type != lexer.TOKEN_GUTTER {
			continue
		}

		start := tokens[i].Span.End
		end := start
		depth := 0

		j := i + 1
		for ; j < len(tokens); j++ {
			t := tokens[j]
			if t.Type == lexer.TOKEN_EOF {
				break
			}
			if t.Type == lexer.TOKEN_END {
				if depth == 0 {
					break
				}
				depth--
				end = t.Span.End
				continue
			}
			switch t.Type {
			case lexer.TOKEN_MAIN, lexer.TOKEN_FUNCTION, lexer.TOKEN_STRUCT,
				lexer.TOKEN_IF, lexer.TOKEN_WHILE, lexer.TOKEN_FOR, lexer.TOKEN_GUTTER:
				depth++
			}
			end = t.Span.End
		}

		if j < len(tokens) && tokens[j].Type == lexer.TOKEN_END {
			end = tokens[j].Span.Start
		}

		regions = append(regions, Region{Span: source.NewSpan(start, end)})
		i = j
	}

	return regions
}

// InjectAll applies the injector to every gutter region of src and
// returns the rebuilt text plus all produced diagnostics. Regions are
// cut against the original offsets, so length changes in an earlier
// region never shift a later one.
func (in *Injector) InjectAll(src string) (string, []errors.Diagnostic) {
	regions := Regions(src)
	if len(regions) == 0 {
		return src, nil
	}

	var b strings.Builder
	var diags []errors.Diagnostic
	cursor := 0

	for _, region := range regions {
		start, end := region.Span.Start.Offset, region.Span.End.Offset
		if start < cursor || end > len(src) || start > end {
			continue
		}
		b.WriteString(src[cursor:start])
		mutated, produced := in.Inject(src[start:end], region.Span)
		b.WriteString(mutated)
		diags = append(diags, produced...)
		cursor = end
	}
	b.WriteString(src[cursor:])

	return b.String(), diags
}
