package inject

import (
	"reflect"
	"strings"
	"testing"

	"github.com/wobble-lang/wobble/compiler/errors"
	"github.com/wobble-lang/wobble/compiler/source"
)

func seeded(seed uint32, cfg Config) *Injector {
	cfg.Seed = &seed
	return New(cfg)
}

func regionSpan() source.Span {
	return source.PointSpan(source.StartOfFile())
}

func TestDeterminism(t *testing.T) {
	src := `main
gutter
    let s = "hello"
    println(s)
end
end`
	cfg := Config{Probability: 0.5, MaxPerRegion: 3}

	first, firstDiags := seeded(42, cfg).InjectAll(src)
	second, secondDiags := seeded(42, cfg).InjectAll(src)

	if first != second {
		t.Errorf("same seed produced different text:\n%q\n%q", first, second)
	}
	if !reflect.DeepEqual(firstDiags, secondDiags) {
		t.Errorf("same seed produced different diagnostics:\n%v\n%v", firstDiags, secondDiags)
	}
}

func TestInjectedDiagnosticsAreMarked(t *testing.T) {
	in := seeded(7, Config{Probability: 1.0, MaxPerRegion: 10})
	_, diags := in.Inject(`let s = "hello"`, regionSpan())

	if len(diags) == 0 {
		t.Fatal("probability 1.0 injected nothing into applicable text")
	}
	for _, d := range diags {
		if !strings.HasPrefix(d.Message, InjectedPrefix) {
			t.Errorf("message %q is missing the %q prefix", d.Message, InjectedPrefix)
		}
		if d.Severity != errors.Error {
			t.Errorf("severity = %s, want error", d.Severity)
		}
	}
}

func TestBudgetCapsInjectionsPerRegion(t *testing.T) {
	// Text where every early template applies.
	text := "let s = \"a\\nb\"\nprintln(s)\nend"

	in := seeded(3, Config{Probability: 1.0, MaxPerRegion: 2})
	_, diags := in.Inject(text, regionSpan())

	if len(diags) != 2 {
		t.Fatalf("got %d injections, want the budget of 2", len(diags))
	}
	if in.StabilityScore() != 80 {
		t.Errorf("score = %d, want 80", in.StabilityScore())
	}
}

func TestTemplatesRunInTableOrder(t *testing.T) {
	text := "let s = \"a\\nb\"\nprintln(s)\nend"

	in := seeded(3, Config{Probability: 1.0, MaxPerRegion: 2})
	_, diags := in.Inject(text, regionSpan())

	if len(diags) != 2 {
		t.Fatalf("got %d injections, want 2", len(diags))
	}
	if diags[0].Code != Templates[0].Code {
		t.Errorf("first injection = %s, want the first template's %s", diags[0].Code, Templates[0].Code)
	}
	if diags[1].Code != Templates[1].Code {
		t.Errorf("second injection = %s, want the second template's %s", diags[1].Code, Templates[1].Code)
	}
}

func TestNoOpTransformCostsNothing(t *testing.T) {
	// No quotes, escapes, keywords, parens, identifiers, or spaces:
	// nothing can mutate.
	in := seeded(9, Config{Probability: 1.0, MaxPerRegion: 10})
	mutated, diags := in.Inject("123", regionSpan())

	if mutated != "123" {
		t.Errorf("text changed to %q", mutated)
	}
	if len(diags) != 0 {
		t.Errorf("got %d diagnostics, want 0", len(diags))
	}
	if in.StabilityScore() != 100 {
		t.Errorf("score = %d, want untouched 100", in.StabilityScore())
	}
}

func TestZeroProbabilityInjectsNothing(t *testing.T) {
	in := seeded(11, Config{Probability: 0.0, MaxPerRegion: 10})
	mutated, diags := in.Inject(`let s = "hello"`, regionSpan())

	if mutated != `let s = "hello"` || len(diags) != 0 {
		t.Errorf("probability 0 still injected: %q, %v", mutated, diags)
	}
}

func TestEnabledCodesFilter(t *testing.T) {
	in := seeded(5, Config{
		Probability:  1.0,
		MaxPerRegion: 10,
		EnabledCodes: []errors.Code{errors.ErrUnterminatedString},
	})
	mutated, diags := in.Inject(`let s = "hello"`, regionSpan())

	if len(diags) != 1 || diags[0].Code != errors.ErrUnterminatedString {
		t.Fatalf("diagnostics = %v, want exactly one %s", diags, errors.ErrUnterminatedString)
	}
	if strings.Count(mutated, `"`) != 1 {
		t.Errorf("mutated = %q, want the closing quote stripped", mutated)
	}
}

func TestScoreFloorsAtZero(t *testing.T) {
	in := seeded(1, Config{Probability: 1.0, MaxPerRegion: 1})

	for i := 0; i < 15; i++ {
		in.Inject(`let s = "hello"`, regionSpan())
	}

	if in.StabilityScore() != 0 {
		t.Errorf("score = %d, want floor of 0", in.StabilityScore())
	}
	if len(in.InjectedErrors()) < 10 {
		t.Errorf("got %d injections, want at least 10", len(in.InjectedErrors()))
	}
}

func TestStabilityBand(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "rock-solid"},
		{90, "rock-solid"},
		{89, "stable"},
		{70, "stable"},
		{69, "wobbly"},
		{50, "wobbly"},
		{49, "unstable"},
		{30, "unstable"},
		{29, "critical"},
		{10, "critical"},
		{9, "collapsed"},
		{0, "collapsed"},
	}

	for _, tt := range tests {
		if got := StabilityBand(tt.score); got != tt.want {
			t.Errorf("StabilityBand(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestRegionsFindGutterSpans(t *testing.T) {
	src := `main
let x = 1
gutter
    let s = "hello"
end
gutter
    let y = 2
end
end`

	regions := Regions(src)
	if len(regions) != 2 {
		t.Fatalf("got %d regions, want 2", len(regions))
	}
	first := regions[0].Span.Text(src)
	if !strings.Contains(first, `"hello"`) {
		t.Errorf("first region = %q, should contain the string literal", first)
	}
	if strings.Contains(first, "let x") {
		t.Errorf("first region = %q, leaked code from outside the gutter", first)
	}
	second := regions[1].Span.Text(src)
	if !strings.Contains(second, "let y = 2") {
		t.Errorf("second region = %q, want the second gutter body", second)
	}
}

func TestRegionsNestingAware(t *testing.T) {
	src := `main
gutter
    if x
        println(x)
    end
end
let after = 1
end`

	regions := Regions(src)
	if len(regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(regions))
	}
	text := regions[0].Span.Text(src)
	if !strings.Contains(text, "if x") || !strings.Contains(text, "println(x)") {
		t.Errorf("region = %q, want the nested if kept inside", text)
	}
	if strings.Contains(text, "after") {
		t.Errorf("region = %q, ran past the gutter's end", text)
	}
}

func TestInjectAllTouchesOnlyGutters(t *testing.T) {
	src := `main
let outside = "untouchable"
gutter
    let inside = "hello"
end
end`

	in := seeded(13, Config{
		Probability:  1.0,
		MaxPerRegion: 1,
		EnabledCodes: []errors.Code{errors.ErrUnterminatedString},
	})
	mutated, diags := in.InjectAll(src)

	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	if !strings.Contains(mutated, `let outside = "untouchable"`) {
		t.Errorf("text outside the gutter was modified:\n%s", mutated)
	}
	if strings.Contains(mutated, `"hello"`) {
		t.Errorf("gutter string kept its closing quote:\n%s", mutated)
	}
}

func TestInjectAllWithoutGutters(t *testing.T) {
	src := "main\nlet x = 1\nend"

	in := seeded(2, Config{Probability: 1.0, MaxPerRegion: 3})
	mutated, diags := in.InjectAll(src)

	if mutated != src {
		t.Errorf("gutterless source was modified: %q", mutated)
	}
	if len(diags) != 0 {
		t.Errorf("got %d diagnostics, want 0", len(diags))
	}
}

func TestSeedMasking(t *testing.T) {
	// Seeds above 2^31 fold into the generator's state space without
	// panicking or losing determinism.
	big := uint32(0xFFFFFFFF)
	cfg := Config{Seed: &big, Probability: 0.5, MaxPerRegion: 3}

	first, _ := New(cfg).Inject(`let s = "hello"`, regionSpan())
	second, _ := New(cfg).Inject(`let s = "hello"`, regionSpan())
	if first != second {
		t.Error("masked seed lost determinism")
	}
}
