// Package inject deterministically plants syntax errors into gutter
// regions of Wobble source text.
//
// Determinism is the core invariant: the same seed, config, and input
// text always produce the same mutated text and the same diagnostic
// list, across processes and platforms, so curriculum levels stay
// reproducible and gradable.
package inject

import (
	"time"

	"github.com/wobble-lang/wobble/compiler/errors"
	"github.com/wobble-lang/wobble/compiler/source"
)

// InjectedPrefix marks diagnostics produced by the injector rather than
// organically authored mistakes.
const InjectedPrefix = "[injected] "

// lcgMask keeps the generator state in [0, 2^31).
const lcgMask = 0x7FFFFFFF

// Config controls one injector instance.
type Config struct {
	// Seed makes runs reproducible. When nil the injector seeds from the
	// wall clock; that mode is for free exploration only, never graded
	// levels.
	Seed *uint32 `json:"seed,omitempty"`
	// Probability in [0,1] that each enabled template fires.
	Probability float64 `json:"probability"`
	// MaxPerRegion caps how many templates may apply per region.
	MaxPerRegion int `json:"maxPerRegion"`
	// EnabledCodes restricts which templates run. Empty means all.
	EnabledCodes []errors.Code `json:"enabledCodes,omitempty"`
}

// DefaultConfig returns the config used by practice sessions.
func DefaultConfig() Config {
	return Config{
		Probability:  0.5,
		MaxPerRegion: 3,
	}
}

// Injector is the state for a sequence of injection calls. The stability
// score starts at 100 and drops 10 per applied template, floored at 0.
type Injector struct {
	cfg      Config
	state    uint32
	score    int
	injected []errors.Diagnostic
	enabled  map[errors.Code]bool
}

// New creates an injector from a config.
func New(cfg Config) *Injector {
	var seed uint32
	if cfg.Seed != nil {
		seed = *cfg.Seed & lcgMask
	} else {
		seed = uint32(time.Now().UnixNano()) & lcgMask
	}

	var enabled map[errors.Code]bool
	if len(cfg.EnabledCodes) > 0 {
		enabled = make(map[errors.Code]bool, len(cfg.EnabledCodes))
		for _, c := range cfg.EnabledCodes {
			enabled[c] = true
		}
	}

	return &Injector{
		cfg:      cfg,
		state:    seed,
		score:    100,
		injected: []errors.Diagnostic{},
		enabled:  enabled,
	}
}

// next advances the linear-congruential generator and returns a uniform
// value in [0,1). The constants and the 2^31 modulus are load-bearing:
// changing them breaks reproducibility of graded levels.
func (in *Injector) next() float64 {
	in.state = uint32((uint64(in.state)*1103515245 + 12345) & lcgMask)
	return float64(in.state) / float64(1<<31)
}

// Inject runs the enabled templates over one text region and returns the
// mutated text with the diagnostics produced. Templates are attempted in
// fixed table order, not random order; under the per-region budget that
// makes earlier templates the pedagogical priority. A template whose
// transformation leaves the text unchanged emits nothing and does not
// count against the budget.
func (in *Injector) Inject(text string, span source.Span) (string, []errors.Diagnostic) {
	produced := []errors.Diagnostic{}
	count := 0

	for _, tmpl := range Templates {
		if in.enabled != nil && !in.enabled[tmpl.Code] {
			continue
		}
		if count >= in.cfg.MaxPerRegion {
			break
		}
		if in.next() >= in.cfg.Probability {
			continue
		}

		mutated := tmpl.Transform(text)
		if mutated == text {
			continue
		}
		text = mutated
		count++

		d := errors.New(tmpl.Code, errors.Error, InjectedPrefix+tmpl.Description, span)
		d.LearningObjective = tmpl.Objective
		d.RecoveryHint = tmpl.Hint
		d.CurriculumLesson = tmpl.Lesson
		produced = append(produced, d)
		in.injected = append(in.injected, d)

		in.score -= 10
		if in.score < 0 {
			in.score = 0
		}
	}

	return text, produced
}

// StabilityScore returns the current 0-100 score.
func (in *Injector) StabilityScore() int {
	return in.score
}

// InjectedErrors returns every diagnostic this injector has produced, in
// injection order.
func (in *Injector) InjectedErrors() []errors.Diagnostic {
	return in.injected
}
