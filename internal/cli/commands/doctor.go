package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wobble-lang/wobble/compiler/errors"
	"github.com/wobble-lang/wobble/internal/cli/config"
	"github.com/wobble-lang/wobble/internal/cli/ui"
)

// NewDoctorCommand creates the doctor command
func NewDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the toolchain setup",
		Long: `Verify that configuration, the lesson catalog, and the progress
database are all usable, and report what the toolchain sees.`,
		Args: cobra.NoArgs,
		RunE: runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	okColor := color.New(color.FgGreen)
	badColor := color.New(color.FgRed, color.Bold)

	problems := 0

	table := ui.NewKeyValueTable(out, false)
	table.AddRow("version", Version)
	table.AddRow("error codes", fmt.Sprintf("%d known", len(errors.AllCodes())))

	cfg, err := config.Load()
	if err != nil {
		table.AddRow("config", "INVALID: "+err.Error())
		problems++
		cfg = &config.Config{}
	} else if config.InWorkspace() {
		table.AddRow("config", "ok (workspace detected)")
	} else {
		table.AddRow("config", "ok (defaults, no workspace here)")
	}

	catalog, err := loadCatalog()
	if err != nil {
		table.AddRow("lesson catalog", "INVALID: "+err.Error())
		problems++
	} else {
		source := "built-in"
		if cfg.Curriculum.Catalog != "" {
			source = cfg.Curriculum.Catalog
		}
		table.AddRow("lesson catalog", fmt.Sprintf("%d lesson(s) from %s", len(catalog.Lessons), source))
	}

	store, err := openStore()
	if err != nil {
		table.AddRow("progress database", "UNUSABLE: "+err.Error())
		problems++
	} else {
		attempts, err := store.Attempts()
		store.Close()
		if err != nil {
			table.AddRow("progress database", "UNREADABLE: "+err.Error())
			problems++
		} else {
			table.AddRow("progress database", fmt.Sprintf("ok, %d attempt(s) recorded", len(attempts)))
		}
	}

	table.Render()
	fmt.Fprintln(out)

	if problems > 0 {
		badColor.Fprintf(out, "%d problem(s) found\n", problems)
		return fmt.Errorf("doctor found %d problem(s)", problems)
	}
	okColor.Fprintln(out, "Everything looks healthy")
	return nil
}
