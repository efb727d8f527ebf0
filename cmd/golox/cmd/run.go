package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/golox/internal/loxlib"
	"github.com/spf13/cobra"
)

var (
	evalExpr   string
	warnUnused bool
	dumpAST    bool
)

var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Run a Lox script or inline expression",
	Long: `Execute a Lox program from a file or inline code.

Examples:
  # Run a script file
  golox run script.lox

  # Evaluate inline code instead of reading from a file
  golox run -e "print \"Hello, world!\";"

  # Warn about local variables that are declared but never read
  golox run --warn-unused script.lox

  # Print the parsed AST instead of running the program
  golox run --dump-ast script.lox`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&warnUnused, "warn-unused", false, "warn about unused local variables (never affects the exit code)")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed syntax tree instead of running the program")
}

func runScript(cmd *cobra.Command, args []string) error {
	noColor, _ := cmd.Flags().GetBool("no-color")
	opts := loxlib.Options{
		WarnUnused: warnUnused,
		UseColor:   !noColor,
	}

	var source string
	switch {
	case evalExpr != "":
		source = evalExpr
	case len(args) == 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		source = string(data)
	default:
		return fmt.Errorf("either provide a script path or use -e for inline code")
	}

	var code int
	if dumpAST {
		code = loxlib.DumpAST(source, cmd.OutOrStdout(), opts)
	} else {
		code = loxlib.NewSession(opts).Run(source)
	}

	if code != loxlib.ExitOK {
		os.Exit(code)
	}
	return nil
}
