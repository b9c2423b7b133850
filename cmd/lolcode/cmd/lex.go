package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jemacalalad/lolcode/internal/interp"
)

var lexEvalExpr string

var lexCmd = &cobra.Command{
	Use:   "lex [file.lol]",
	Short: "Preprocess a LOLCODE program and print its lexeme table",
	Long: `Preprocess a program and print the cleaned line sequence (comments
stripped, HAI/KTHXBYE located), then run it through the interpreter with
no input and print that run's lexeme table; VISIBLE output is not
printed. GIMMEH never blocks on real input here; a program
that reaches GIMMEH during a dry run surfaces Error 45 the same way it
would if stdin were already at EOF.

Examples:
  lolcode lex hello.lol
  lolcode lex -e 'HAI
VISIBLE "HAI WORLD!"
KTHXBYE'`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexProgram,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "lex inline source instead of reading from file")
}

// eofReader always reports EOF, so a dry lex pass never blocks on stdin.
type eofReader struct{}

func (eofReader) ReadLine() (string, bool) { return "", false }

func lexProgram(cmd *cobra.Command, args []string) error {
	var source, filename string

	if lexEvalExpr != "" {
		source = lexEvalExpr
		filename = "<eval>"
	} else if len(args) == 1 {
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		source = string(content)
	} else {
		return fmt.Errorf("either provide a file path or use -e for inline source")
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Lexing: %s\n", filename)
	}

	lines, diag := interp.Preprocess(source)
	if diag != nil {
		fmt.Fprintln(os.Stderr, diag.Error())
		return fmt.Errorf("preprocessing failed")
	}

	fmt.Println("--- cleaned lines ---")
	for _, line := range lines {
		fmt.Println(line)
	}

	result, line, diag := interp.Run(source, eofReader{})
	if diag != nil {
		fmt.Fprint(os.Stderr, diag.WithLine(line))
		fmt.Fprintln(os.Stderr)
		return fmt.Errorf("lexing failed")
	}

	fmt.Println("--- lexemes ---")
	for _, lex := range result.Lexemes.Entries() {
		fmt.Printf("%-24s %s\n", lex.Classification, lex.Text)
	}

	return nil
}
