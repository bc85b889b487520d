package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parsekit-go/parsec/internal/grammars"
)

var listSymbolsCmd = &cobra.Command{
	Use:   "list-symbols",
	Short: "List the registered symbol names of the JSON grammar",
	RunE:  runListSymbols,
}

func runListSymbols(cmd *cobra.Command, args []string) error {
	g := grammars.JSON()
	fp, err := g.Fingerprint()
	if err != nil {
		return err
	}
	for _, name := range g.SymbolNames() {
		fmt.Println(name)
	}
	session.Logger.Info().Str("fingerprint", fp).Int("count", len(g.SymbolNames())).Msg("list-symbols")
	return nil
}
