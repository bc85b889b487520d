package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/parsekit-go/parsec/tokenstream"
)

var lexCmd = &cobra.Command{
	Use:   "lex",
	Short: "Tokenize and evaluate an arithmetic expression via the lexmachine-backed token stream",
	Long: `lex demonstrates parsing over a non-character Stream: the expression is
first tokenized by a compiled lexmachine DFA (tokenstream package), then
parsed from that token stream rather than character by character.`,
	RunE: runLex,
}

func runLex(cmd *cobra.Command, args []string) error {
	text, err := readLexInput(args)
	if err != nil {
		return err
	}

	tokens, err := tokenstream.Tokenize(text)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		for _, t := range tokens {
			session.Logger.Debug().Str("type", t.Type).Str("lexeme", t.Lexeme).Msg("token")
		}
	}

	value, err := tokenstream.Eval(text)
	if err != nil {
		printError(err)
		return err
	}
	fmt.Println(value)
	return nil
}

func readLexInput(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
