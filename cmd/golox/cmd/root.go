package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "golox",
	Short: "Lox interpreter",
	Long: `golox is a tree-walking interpreter for Lox, the language from
Crafting Interpreters.

It lexes, parses, resolves, and interprets Lox source directly: there
is no bytecode stage. Run a script with "golox run script.lox", or
start an interactive session with "golox repl" (or bare "golox").`,
	Version: Version,
	RunE:    runRepl,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "accepted by every command; no command changes its output for it")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored diagnostics")
}
