package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wobble-lang/wobble/compiler/errors"
	"github.com/wobble-lang/wobble/internal/cli/config"
	"github.com/wobble-lang/wobble/internal/cli/ui"
	"github.com/wobble-lang/wobble/internal/curriculum"
)

var explainList bool

// NewExplainCommand creates the explain command
func NewExplainCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain <code>",
		Short: "Explain a Wobble error code",
		Long: `Print the full catalog entry for an error code: what it means, what
you are meant to learn from it, how to fix it, and which lesson covers
it.

Codes are forgiving to type: E0002, e0002, e2, and 0002 all name the
same entry.`,
		Example: `  wobble explain E0002
  wobble explain e7
  wobble explain --list`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExplain,
	}

	cmd.Flags().BoolVar(&explainList, "list", false, "List every known error code")

	return cmd
}

func runExplain(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if explainList {
		return listCodes(cmd)
	}
	if len(args) == 0 {
		return fmt.Errorf("provide an error code, or --list to see them all")
	}

	code, err := errors.Normalize(args[0])
	if err != nil || !code.IsKnown() {
		known := make([]string, 0)
		for _, c := range errors.AllCodes() {
			known = append(known, string(c))
		}
		suggestions := ui.FindSimilar(args[0], known, nil)
		fmt.Fprint(cmd.ErrOrStderr(), ui.UnknownCodeError(args[0], suggestions, false))
		return fmt.Errorf("unknown error code: %s", args[0])
	}

	info, _ := errors.Lookup(code)

	titleColor := color.New(color.FgCyan, color.Bold)
	labelColor := color.New(color.FgYellow)

	titleColor.Fprintf(out, "%s: %s\n", info.Code, info.Title)
	fmt.Fprintf(out, "band: %s\n\n", info.Code.Band())
	fmt.Fprintln(out, info.Explanation)
	fmt.Fprintln(out)
	labelColor.Fprint(out, "What you are learning: ")
	fmt.Fprintln(out, info.LearningObjective)
	labelColor.Fprint(out, "How to fix it: ")
	fmt.Fprintln(out, info.RecoveryHint)

	catalog, err := loadCatalog()
	if err == nil {
		if lessons := catalog.ByErrorCode(code); len(lessons) > 0 {
			labelColor.Fprint(out, "Covered in: ")
			for i, lesson := range lessons {
				if i > 0 {
					fmt.Fprint(out, ", ")
				}
				fmt.Fprintf(out, "lesson %d (%s)", lesson.Number, lesson.Title)
			}
			fmt.Fprintln(out)
		}
	}

	return nil
}

func listCodes(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	codeColor := color.New(color.FgCyan, color.Bold)

	for _, code := range errors.AllCodes() {
		info, _ := errors.Lookup(code)
		codeColor.Fprintf(out, "%s", code)
		fmt.Fprintf(out, "  %s\n", info.Title)
	}
	return nil
}

// loadCatalog returns the configured lesson catalog, falling back to the
// built-in one.
func loadCatalog() (*curriculum.Catalog, error) {
	cfg, err := config.Load()
	if err == nil && cfg.Curriculum.Catalog != "" {
		return curriculum.Load(cfg.Curriculum.Catalog)
	}
	return curriculum.Default(), nil
}
