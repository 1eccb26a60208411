package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wobble-lang/wobble/compiler/errors"
	"github.com/wobble-lang/wobble/compiler/inject"
	"github.com/wobble-lang/wobble/compiler/parser"
	"github.com/wobble-lang/wobble/internal/cli/config"
	"github.com/wobble-lang/wobble/internal/cli/ui"
)

var (
	checkJSON    bool
	checkNoColor bool
)

// NewCheckCommand creates the check command
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file.wob>...",
		Short: "Lex and parse Wobble files, reporting every diagnostic",
		Long: `Run the full front end over one or more .wob files.

Checking never stops at the first mistake: the lexer and parser both
recover and keep going, so a single run reports everything they can
find. Each file also gets a stability score from 0 (collapsed) to 100
(rock-solid), dropping 10 points per error.`,
		Example: `  # Check a single file
  wobble check hello.wob

  # Check several files and emit machine-readable output
  wobble check src/*.wob --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCheck,
	}

	cmd.Flags().BoolVar(&checkJSON, "json", false, "Output diagnostics as JSON")
	cmd.Flags().BoolVar(&checkNoColor, "no-color", false, "Disable colored output")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("config load failed, using defaults", zap.Error(err))
		cfg = &config.Config{}
	}

	noColor := checkNoColor || cfg.Output.NoColor
	asJSON := checkJSON || cfg.Output.JSON

	out := cmd.OutOrStdout()
	totalErrors := 0

	for _, path := range args {
		if filepath.Ext(path) != ".wob" {
			logger.Warn("unexpected file extension", zap.String("file", path))
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		src := string(data)

		start := time.Now()
		program := parser.Parse(src)
		logger.Debug("checked file",
			zap.String("file", path),
			zap.Int("diagnostics", len(program.Diagnostics)),
			zap.Int("stability", program.StabilityScore),
			zap.Duration("elapsed", time.Since(start)))

		errors.SortBySpan(program.Diagnostics)
		totalErrors += errors.CountErrors(program.Diagnostics)

		if asJSON {
			text, err := errors.FormatAsJSON(program.Diagnostics)
			if err != nil {
				return fmt.Errorf("failed to encode diagnostics: %w", err)
			}
			fmt.Fprintln(out, text)
			continue
		}

		if len(args) > 1 {
			header := color.New(color.FgWhite, color.Bold)
			if noColor {
				header.DisableColor()
			}
			header.Fprintf(out, "%s\n%s\n", path, strings.Repeat("-", len(path)))
		}

		if len(program.Diagnostics) == 0 {
			ui.WriteSuccess(out, fmt.Sprintf("%s: no problems found", path), noColor)
		} else {
			ui.WriteDiagnostics(out, program.Diagnostics, ui.RenderOptions{Source: src, NoColor: noColor})
			fmt.Fprintln(out)
		}

		band := inject.StabilityBand(program.StabilityScore)
		fmt.Fprintln(out, ui.FormatStability(program.StabilityScore, band, noColor))
	}

	if totalErrors > 0 {
		return fmt.Errorf("found %d error(s)", totalErrors)
	}
	return nil
}
