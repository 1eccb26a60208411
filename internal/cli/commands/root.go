package commands

import (
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

var debugMode bool

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wobble",
		Short: "Wobble language front end and practice tooling",
		Long: color.CyanString(`Wobble - A Language That Teaches Through Breakage

Wobble is a small teaching language. Its toolchain never executes code;
it reads .wob files, reports every mistake it can find with a learning
hint, and can deliberately destabilize gutter blocks so you practice
reading error messages.

Features:
  • Recovering lexer and parser (all errors in one pass)
  • Numbered error codes with explanations (wobble explain E0002)
  • Deterministic, seeded error injection for practice drills
  • A 0-100 stability score per file
  • Local progress tracking across lessons`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewCheckCommand())
	rootCmd.AddCommand(NewTokensCommand())
	rootCmd.AddCommand(NewExplainCommand())
	rootCmd.AddCommand(NewInjectCommand())
	rootCmd.AddCommand(NewNewCommand())
	rootCmd.AddCommand(NewProgressCommand())
	rootCmd.AddCommand(NewDoctorCommand())

	return rootCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display the Wobble toolchain version, Git commit, build date, and Go version",
		Run: func(cmd *cobra.Command, args []string) {
			// Set GoVersion to actual runtime if not set at build time
			goVer := GoVersion
			if goVer == "unknown" {
				goVer = runtime.Version()
			}

			titleColor := color.New(color.FgCyan, color.Bold)
			valueColor := color.New(color.FgWhite)

			titleColor.Print("Wobble version: ")
			valueColor.Println(Version)

			titleColor.Print("Git commit: ")
			valueColor.Println(GitCommit)

			titleColor.Print("Build date: ")
			valueColor.Println(BuildDate)

			titleColor.Print("Go version: ")
			valueColor.Println(goVer)
		},
	}
}

// newLogger builds the command logger. Debug mode gets a development
// logger on stderr; otherwise logging is disabled.
func newLogger() *zap.Logger {
	if !debugMode {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}
