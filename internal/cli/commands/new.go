package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wobble-lang/wobble/internal/curriculum"
)

var (
	newLesson int
	newConfig bool
)

// validateDrillName validates the practice file name
func validateDrillName(name string) error {
	name = strings.TrimSpace(name)

	if len(name) == 0 || len(name) > 100 {
		return fmt.Errorf("name must be 1-100 characters")
	}
	if filepath.IsAbs(name) {
		return fmt.Errorf("name cannot be an absolute path")
	}
	matched, _ := regexp.MatchString(`^[a-zA-Z0-9_-]+$`, name)
	if !matched {
		return fmt.Errorf("name can only contain letters, numbers, dashes, and underscores")
	}
	return nil
}

// NewNewCommand creates the new command
func NewNewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Scaffold a practice .wob file",
		Long: `Create a starter Wobble file with a main block and a gutter region,
ready for wobble inject.

If no name is provided, you will be prompted to enter one.`,
		Example: `  wobble new warmup
  wobble new drill-5 --lesson 5
  wobble new practice --config`,
		RunE: runNew,
	}

	cmd.Flags().IntVar(&newLesson, "lesson", 0, "Lesson this drill practices")
	cmd.Flags().BoolVar(&newConfig, "config", false, "Also write a wobble.yaml config file")

	return cmd
}

func runNew(cmd *cobra.Command, args []string) error {
	successColor := color.New(color.FgGreen, color.Bold)
	infoColor := color.New(color.FgCyan)

	var name string
	if len(args) > 0 {
		name = args[0]
	}

	if name == "" {
		prompt := &survey.Input{
			Message: "Drill name:",
		}
		if err := survey.AskOne(prompt, &name, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}
	if err := validateDrillName(name); err != nil {
		return err
	}

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	lesson := newLesson
	if lesson == 0 && len(args) == 0 {
		// Interactive lesson selection when fully prompted
		options := make([]string, 0, len(catalog.Lessons)+1)
		options = append(options, "none")
		for _, l := range catalog.Lessons {
			options = append(options, fmt.Sprintf("%d - %s", l.Number, l.Title))
		}
		var selectedIdx int
		prompt := &survey.Select{
			Message: "Lesson to practice:",
			Options: options,
		}
		if err := survey.AskOne(prompt, &selectedIdx); err != nil {
			return err
		}
		if selectedIdx > 0 {
			lesson = catalog.Lessons[selectedIdx-1].Number
		}
	}
	if lesson > 0 {
		if _, ok := catalog.ByNumber(lesson); !ok {
			return fmt.Errorf("no lesson %d in the catalog", lesson)
		}
	}

	path := name + ".wob"
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("file %s already exists", path)
	}

	if err := os.WriteFile(path, []byte(drillTemplate(name, lesson, catalog)), 0644); err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	infoColor.Printf("  ✓ Created %s\n", path)

	if newConfig {
		if _, err := os.Stat("wobble.yaml"); err == nil {
			infoColor.Println("  - wobble.yaml already exists, skipping")
		} else {
			if err := os.WriteFile("wobble.yaml", []byte(configTemplate), 0644); err != nil {
				return fmt.Errorf("failed to create wobble.yaml: %w", err)
			}
			infoColor.Println("  ✓ Created wobble.yaml")
		}
	}

	fmt.Println()
	successColor.Printf("✓ Created drill: %s\n\n", name)
	fmt.Println("Get started:")
	fmt.Printf("  wobble check %s\n", path)
	if lesson > 0 {
		fmt.Printf("  wobble inject %s --seed 1 --lesson %d -o %s-broken.wob\n", path, lesson, name)
	} else {
		fmt.Printf("  wobble inject %s --seed 1 -o %s-broken.wob\n", path, name)
	}
	fmt.Printf("  wobble check %s-broken.wob\n", name)

	return nil
}

func drillTemplate(name string, lesson int, catalog *curriculum.Catalog) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s: a practice drill\n", name)
	if lesson > 0 {
		if l, ok := catalog.ByNumber(lesson); ok {
			fmt.Fprintf(&b, "# lesson %d: %s\n", l.Number, l.Title)
		}
	}
	b.WriteString(`
main
    let greeting = "hello, wobble"
    let mutable count = 0

    while count < 3
        println(greeting)
        count = count + 1
    end

    gutter
        let message = "this block is fair game for injection"
        if count == 3
            println(message)
        end
    end
end
`)
	return b.String()
}

const configTemplate = `# Wobble toolchain configuration
inject:
  probability: 0.5
  max_per_region: 3

output:
  no_color: false
  json: false
`
