package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/cwbudde/golox/internal/loxlib"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	promptColor = color.New(color.FgCyan)
	errorColor  = color.New(color.FgRed)
	byeColor    = color.New(color.FgGreen)
)

const replBanner = `golox -- a tree-walking Lox interpreter
Type an expression or statement and press enter.
Type .exit (or Ctrl-D) to quit.`

var replCmd = &cobra.Command{
	Use:     "repl",
	Aliases: []string{"console"},
	Short:   "Start an interactive Lox session",
	Long:    `Start a read-eval-print loop: each line runs against a session whose global variables and functions persist across lines.`,
	RunE:    runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, _ []string) error {
	noColor, _ := cmd.Flags().GetBool("no-color")
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, replBanner)

	prompt := "golox> "
	if !noColor {
		prompt = promptColor.Sprint(prompt)
	}
	rl, err := readline.New(prompt)
	if err != nil {
		return fmt.Errorf("failed to start readline: %w", err)
	}
	defer rl.Close()

	session := loxlib.NewSession(loxlib.Options{
		UseColor: !noColor,
		Stdout:   out,
		Stderr:   out,
	})

	for {
		line, err := rl.Readline()
		if err != nil {
			byeColor.Fprintln(out, "Goodbye!")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			byeColor.Fprintln(out, "Goodbye!")
			return nil
		}

		rl.SaveHistory(line)
		runLine(session, out, line)
	}
}

// runLine executes one REPL line with panic recovery, so a bug deep in
// the interpreter ends the line, not the session.
func runLine(session *loxlib.Session, out io.Writer, line string) {
	defer func() {
		if r := recover(); r != nil {
			errorColor.Fprintf(out, "[internal error] %v\n", r)
		}
	}()
	session.Run(line)
}
