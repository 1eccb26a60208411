package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wobble-lang/wobble/compiler/errors"
	"github.com/wobble-lang/wobble/compiler/inject"
	"github.com/wobble-lang/wobble/compiler/parser"
	"github.com/wobble-lang/wobble/internal/cli/config"
	"github.com/wobble-lang/wobble/internal/cli/ui"
	"github.com/wobble-lang/wobble/internal/progress"
)

// NewProgressCommand creates the progress command
func NewProgressCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Track lesson attempts and scores",
		Long: `Record practice attempts and review your history.

Attempts are stored in a local SQLite database; the location defaults
to ~/.wobble/progress.db and can be changed with the progress.database
config key.`,
	}

	cmd.AddCommand(newProgressRecordCommand())
	cmd.AddCommand(newProgressListCommand())

	return cmd
}

func newProgressRecordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "record <lesson> <file.wob>",
		Short: "Check a file and record the result against a lesson",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lesson, err := strconv.Atoi(args[0])
			if err != nil || lesson <= 0 {
				return fmt.Errorf("lesson must be a positive number, got %q", args[0])
			}

			catalog, err := loadCatalog()
			if err != nil {
				return err
			}
			if _, ok := catalog.ByNumber(lesson); !ok {
				return fmt.Errorf("no lesson %d in the catalog", lesson)
			}

			data, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[1], err)
			}

			program := parser.Parse(string(data))
			errorCount := errors.CountErrors(program.Diagnostics)

			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.RecordAttempt(lesson, program.StabilityScore, errorCount); err != nil {
				return err
			}

			band := inject.StabilityBand(program.StabilityScore)
			ui.WriteSuccess(cmd.OutOrStdout(),
				fmt.Sprintf("recorded lesson %d attempt: %d error(s), stability %d/100 (%s)",
					lesson, errorCount, program.StabilityScore, band), false)
			return nil
		},
	}
}

func newProgressListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show recorded attempts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			attempts, err := store.Attempts()
			if err != nil {
				return err
			}
			if len(attempts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No attempts recorded yet. Try: wobble progress record <lesson> <file.wob>")
				return nil
			}

			table := ui.NewTable(cmd.OutOrStdout(),
				[]string{"WHEN", "LESSON", "ERRORS", "STABILITY"}, false)
			for _, a := range attempts {
				table.AddRow(
					a.CreatedAt.Format("2006-01-02 15:04"),
					strconv.Itoa(a.Lesson),
					strconv.Itoa(a.ErrorCount),
					fmt.Sprintf("%d (%s)", a.StabilityScore, inject.StabilityBand(a.StabilityScore)),
				)
			}
			table.Render()
			return nil
		},
	}
}

func openStore() (*progress.Store, error) {
	path := ""
	if cfg, err := config.Load(); err == nil {
		path = cfg.Progress.Database
	}
	if path == "" {
		path = "wobble-progress.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create progress directory: %w", err)
	}
	return progress.Open(path)
}
