package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/parsekit-go/parsec/internal/grammars"
)

var replGrammarName string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively parse lines with a chosen grammar",
	RunE:  runRepl,
}

func init() {
	replCmd.Flags().StringVarP(&replGrammarName, "grammar", "g", "", "Grammar to parse with (json or expr); defaults to the configured default")
}

func runRepl(cmd *cobra.Command, args []string) error {
	if !isTerminalIO() {
		return fmt.Errorf("cannot start repl: stdin or stdout is not a terminal")
	}

	name := replGrammarName
	if name == "" {
		name = cfg.DefaultGrammar
	}

	rl, err := readline.New(fmt.Sprintf("parsec[%s]> ", name))
	if err != nil {
		return err
	}
	defer rl.Close()

	pterm.Info.Println("Type an expression to parse, or Ctrl-D to quit.")
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on Ctrl-D
			if err == io.EOF {
				break
			}
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		value, err := parseOne(name, line)
		if err != nil {
			pterm.Error.Println(err.Error())
			session.ParseResult(name, "", "<repl>", err)
			continue
		}
		session.ParseResult(name, "", "<repl>", nil)
		renderValue(value)
	}
	pterm.Info.Println("Goodbye!")
	return nil
}

// renderValue displays a successfully parsed value as a pterm tree,
// mirroring gorgo/terexlang/trepl's tree command built on
// pterm.NewTreeFromLeveledList/pterm.DefaultTree.
func renderValue(value any) {
	root := pterm.NewTreeFromLeveledList(leveledList(value, pterm.LeveledList{}, 0))
	_ = pterm.DefaultTree.WithRoot(root).Render()
}

func leveledList(value any, ll pterm.LeveledList, level int) pterm.LeveledList {
	switch v := value.(type) {
	case []any:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: "array"})
		for _, item := range v {
			ll = leveledList(item, ll, level+1)
		}
	case grammars.Expr:
		switch {
		case v.IsId:
			ll = append(ll, pterm.LeveledListItem{Level: level, Text: "id: " + v.Id})
		case v.IsInt:
			ll = append(ll, pterm.LeveledListItem{Level: level, Text: fmt.Sprintf("int: %d", v.Int)})
		default:
			ll = append(ll, pterm.LeveledListItem{Level: level, Text: "array"})
			for _, item := range v.Array {
				ll = leveledList(item, ll, level+1)
			}
		}
	case []grammars.Expr:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: "exprs"})
		for _, item := range v {
			ll = leveledList(item, ll, level+1)
		}
	default:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: fmt.Sprintf("%v", v)})
	}
	return ll
}
