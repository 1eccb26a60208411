package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wobble-lang/wobble/compiler/lexer"
)

var (
	tokensJSON   bool
	tokensTrivia bool
)

// NewTokensCommand creates the tokens command
func NewTokensCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens <file.wob>",
		Short: "Dump the token stream for a Wobble file",
		Long: `Tokenize a .wob file and print each token with its span.

Useful for seeing exactly what the lexer makes of your source,
including the error tokens it emits while recovering. Trivia tokens
(whitespace, newlines, comments) are hidden unless --trivia is given.`,
		Args: cobra.ExactArgs(1),
		RunE: runTokens,
	}

	cmd.Flags().BoolVar(&tokensJSON, "json", false, "Output tokens as JSON")
	cmd.Flags().BoolVar(&tokensTrivia, "trivia", false, "Include whitespace, newline, and comment tokens")

	return cmd
}

type tokenDump struct {
	Type   string `json:"type"`
	Lexeme string `json:"lexeme"`
	Span   string `json:"span"`
}

func runTokens(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	tokens, diags := lexer.Tokenize(string(data))
	if !tokensTrivia {
		tokens = lexer.Filter(tokens)
	}

	out := cmd.OutOrStdout()

	if tokensJSON {
		dump := make([]tokenDump, len(tokens))
		for i, t := range tokens {
			dump[i] = tokenDump{Type: t.Type.String(), Lexeme: t.Lexeme, Span: t.Span.String()}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(dump)
	}

	typeColor := color.New(color.FgCyan)
	spanColor := color.New(color.FgBlue)
	for _, t := range tokens {
		spanColor.Fprintf(out, "%-12s", t.Span.String())
		typeColor.Fprintf(out, " %-24s", t.Type.String())
		fmt.Fprintf(out, " %q\n", t.Lexeme)
	}

	if len(diags) > 0 {
		fmt.Fprintf(out, "\n%d diagnostic(s) during lexing; run `wobble check %s` for details\n", len(diags), args[0])
	}

	return nil
}
