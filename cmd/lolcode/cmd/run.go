package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jemacalalad/lolcode/internal/config"
	"github.com/jemacalalad/lolcode/internal/interp"
	"github.com/jemacalalad/lolcode/internal/report"
)

var (
	evalExpr    string
	showLexemes bool
	showSymbols bool
	jsonOutput  bool
	configPath  string
)

var runCmd = &cobra.Command{
	Use:   "run [file.lol]",
	Short: "Run a LOLCODE program",
	Long: `Execute a LOLCODE program from a file or inline source.

Examples:
  # Run a program file
  lolcode run hello.lol

  # Evaluate inline source
  lolcode run -e 'HAI
VISIBLE "HAI WORLD!"
KTHXBYE'

  # Run with the lexeme and symbol tables printed after execution
  lolcode run --show-lexemes --show-symbols hello.lol

  # Emit output/lexemes/symbols as JSON
  lolcode run --json hello.lol`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProgram,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "run inline source instead of reading from file")
	runCmd.Flags().BoolVar(&showLexemes, "show-lexemes", false, "print the lexeme table after a successful run")
	runCmd.Flags().BoolVar(&showSymbols, "show-symbols", false, "print the final symbol table after a successful run")
	runCmd.Flags().BoolVar(&jsonOutput, "json", false, "emit the run result (output/lexemes/symbols) as JSON")
	runCmd.Flags().StringVar(&configPath, "config", "", "path to a .lolcode.yaml config file (default: $HOME/.lolcode.yaml if present)")
}

func runProgram(cmd *cobra.Command, args []string) error {
	var source, filename string

	if evalExpr != "" {
		source = evalExpr
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

	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if !cmd.Flags().Changed("show-lexemes") && cfg.ShowLexemes {
		showLexemes = true
	}
	if !cmd.Flags().Changed("show-symbols") && cfg.ShowSymbols {
		showSymbols = true
	}
	if !cmd.Flags().Changed("json") && cfg.JSONOutput {
		jsonOutput = true
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Running: %s\n", filename)
	}

	in := interp.NewLineReader(bufio.NewScanner(os.Stdin))
	result, line, diag := interp.Run(source, in)
	if diag != nil {
		fmt.Fprint(os.Stderr, diag.WithLine(line))
		fmt.Fprintln(os.Stderr)
		return fmt.Errorf("program failed")
	}

	if jsonOutput {
		doc, err := report.Build(result.Output, result.Lexemes, result.Symbols)
		if err != nil {
			return fmt.Errorf("building JSON report: %w", err)
		}
		fmt.Println(doc)
		return nil
	}

	fmt.Print(result.Output)

	if showLexemes {
		fmt.Println("--- lexemes ---")
		for _, lex := range result.Lexemes.Entries() {
			fmt.Printf("%-24s %s\n", lex.Classification, lex.Text)
		}
	}

	if showSymbols {
		fmt.Println("--- symbols ---")
		for _, entry := range result.Symbols.Entries() {
			fmt.Printf("%-12s %-8s %s\n", entry.Name, entry.Value.Type(), entry.Value.Payload())
		}
	}

	return nil
}
