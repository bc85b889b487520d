package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/parsekit-go/parsec/internal/config"
	"github.com/parsekit-go/parsec/internal/diag"
)

var (
	verbose bool
	noColor bool

	cfg     *config.Config
	session *diag.Session
)

var rootCmd = &cobra.Command{
	Use:   "parsec",
	Short: "Parse and explore grammars built on the parsec combinator library",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		if noColor || cfg.NoColor {
			color.NoColor = true
		}
		if verbose {
			cfg.Verbose = true
		}

		s, err := diag.NewSession(cfg.Verbose)
		if err != nil {
			return fmt.Errorf("starting diagnostics session: %w", err)
		}
		session = s
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug-level logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.AddCommand(parseCmd, replCmd, lexCmd, listSymbolsCmd)
}

// isTerminalIO reports whether both stdin and stdout are attached to a
// terminal, mirroring deepnoodle-ai-risor/cmd/risor/root.go's isTerminalIO.
func isTerminalIO() bool {
	in, out := os.Stdin.Fd(), os.Stdout.Fd()
	return (isatty.IsTerminal(in) || isatty.IsCygwinTerminal(in)) &&
		(isatty.IsTerminal(out) || isatty.IsCygwinTerminal(out))
}
