package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wobble-lang/wobble/compiler/errors"
	"github.com/wobble-lang/wobble/compiler/inject"
	"github.com/wobble-lang/wobble/internal/cli/config"
	"github.com/wobble-lang/wobble/internal/cli/ui"
)

var (
	injectSeed        uint32
	injectProbability float64
	injectMax         int
	injectCodes       []string
	injectLesson      int
	injectOutput      string
	injectReport      bool
)

// NewInjectCommand creates the inject command
func NewInjectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inject <file.wob>",
		Short: "Plant errors into the gutter blocks of a Wobble file",
		Long: `Deterministically corrupt the gutter regions of a .wob file so you can
practice diagnosing the result.

Only text inside gutter ... end blocks is touched. With --seed the run
is fully reproducible: the same seed on the same file always plants the
same errors. Without a seed the injector uses the clock, which is fine
for free practice but useless for graded drills.`,
		Example: `  # Reproducible practice file
  wobble inject drill.wob --seed 42 -o broken.wob

  # Practice only the errors lesson 5 teaches
  wobble inject drill.wob --seed 42 --lesson 5 -o broken.wob

  # Emit a JSON session report instead of the mutated source
  wobble inject drill.wob --seed 42 --report`,
		Args: cobra.ExactArgs(1),
		RunE: runInject,
	}

	cmd.Flags().Uint32Var(&injectSeed, "seed", 0, "Seed for reproducible injection (omit for a random run)")
	cmd.Flags().Float64Var(&injectProbability, "probability", 0.5, "Chance each template fires, in [0, 1]")
	cmd.Flags().IntVar(&injectMax, "max", 3, "Maximum injected errors per gutter region")
	cmd.Flags().StringSliceVar(&injectCodes, "codes", nil, "Restrict injection to these error codes")
	cmd.Flags().IntVar(&injectLesson, "lesson", 0, "Restrict injection to the codes a lesson teaches")
	cmd.Flags().StringVarP(&injectOutput, "output", "o", "", "Write mutated source to this file (default: stdout)")
	cmd.Flags().BoolVar(&injectReport, "report", false, "Print a JSON session report instead of the source")

	return cmd
}

// injectSession is the JSON report for one injection run.
type injectSession struct {
	SessionID      string              `json:"sessionId"`
	File           string              `json:"file"`
	Seed           *uint32             `json:"seed,omitempty"`
	StabilityScore int                 `json:"stabilityScore"`
	StabilityBand  string              `json:"stabilityBand"`
	Injected       []errors.Diagnostic `json:"injected"`
}

func runInject(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	src := string(data)

	injCfg, seed, err := buildInjectConfig(cmd)
	if err != nil {
		return err
	}

	injector := inject.New(injCfg)
	mutated, diags := injector.InjectAll(src)

	logger.Debug("injection complete",
		zap.String("file", args[0]),
		zap.Int("injected", len(diags)),
		zap.Int("stability", injector.StabilityScore()))

	if injectReport {
		session := injectSession{
			SessionID:      uuid.New().String(),
			File:           args[0],
			Seed:           seed,
			StabilityScore: injector.StabilityScore(),
			StabilityBand:  inject.StabilityBand(injector.StabilityScore()),
			Injected:       diags,
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(session)
	}

	if injectOutput != "" {
		if err := os.WriteFile(injectOutput, []byte(mutated), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", injectOutput, err)
		}
		ui.WriteSuccess(cmd.OutOrStdout(),
			fmt.Sprintf("wrote %s with %d injected error(s), stability %d/100",
				injectOutput, len(diags), injector.StabilityScore()), false)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), mutated)
	return nil
}

func buildInjectConfig(cmd *cobra.Command) (inject.Config, *uint32, error) {
	injCfg := inject.DefaultConfig()

	if cfg, err := config.Load(); err == nil {
		injCfg.Probability = cfg.Inject.Probability
		injCfg.MaxPerRegion = cfg.Inject.MaxPerRegion
	}
	if cmd.Flags().Changed("probability") {
		injCfg.Probability = injectProbability
	}
	if cmd.Flags().Changed("max") {
		injCfg.MaxPerRegion = injectMax
	}
	if injCfg.Probability < 0 || injCfg.Probability > 1 {
		return inject.Config{}, nil, fmt.Errorf("probability must be in [0, 1], got %g", injCfg.Probability)
	}

	var seed *uint32
	if cmd.Flags().Changed("seed") {
		s := injectSeed
		seed = &s
		injCfg.Seed = seed
	}

	if injectLesson > 0 {
		catalog, err := loadCatalog()
		if err != nil {
			return inject.Config{}, nil, err
		}
		codes, ok := catalog.InjectionConfigFor(injectLesson)
		if !ok {
			return inject.Config{}, nil, fmt.Errorf("no lesson %d in the catalog", injectLesson)
		}
		injCfg.EnabledCodes = codes
	}
	for _, raw := range injectCodes {
		code, err := errors.Normalize(raw)
		if err != nil {
			known := make([]string, 0)
			for _, c := range errors.AllCodes() {
				known = append(known, string(c))
			}
			if best := ui.FindBestMatch(raw, known, nil); best != "" {
				return inject.Config{}, nil, fmt.Errorf("%w (did you mean %s?)", err, best)
			}
			return inject.Config{}, nil, err
		}
		injCfg.EnabledCodes = append(injCfg.EnabledCodes, code)
	}

	return injCfg, seed, nil
}
