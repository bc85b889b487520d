package tokenstream

import (
	"fmt"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/parsekit-go/parsec"
)

// token type ids, in the same "small int per token name" shape as
// npillmayer-gorgo/terexlang/scan.go's tokenIds map.
const (
	tokNum = iota
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
)

var tokenNames = map[int]string{
	tokNum:    "NUM",
	tokPlus:   "PLUS",
	tokMinus:  "MINUS",
	tokStar:   "STAR",
	tokSlash:  "SLASH",
	tokLParen: "LPAREN",
	tokRParen: "RPAREN",
}

func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// buildLexer compiles the DFA for a small arithmetic language — integers,
// +, -, *, /, ( and ) — directly following terexlang.Lexer's Add/Compile
// shape.
func buildLexer() (*lexmachine.Lexer, error) {
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(`[0-9]+`), makeToken(tokNum))
	lexer.Add([]byte(`\+`), makeToken(tokPlus))
	lexer.Add([]byte(`\-`), makeToken(tokMinus))
	lexer.Add([]byte(`\*`), makeToken(tokStar))
	lexer.Add([]byte(`/`), makeToken(tokSlash))
	lexer.Add([]byte(`\(`), makeToken(tokLParen))
	lexer.Add([]byte(`\)`), makeToken(tokRParen))
	lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
	if err := lexer.Compile(); err != nil {
		return nil, fmt.Errorf("tokenstream: compiling DFA: %w", err)
	}
	return lexer, nil
}

// Tokenize scans src into a flat slice of Tokens, ready to be handed to
// NewStream. Scanning happens eagerly (not lazily per Uncons) because
// lexmachine.Scanner is itself stateful and not a value type, so it cannot
// satisfy parsec.Stream's cheap-clone requirement directly — materializing
// the token slice up front and viewing it with parsec.NewSliceStream is the
// adapter.
func Tokenize(src string) ([]Token, error) {
	lexer, err := buildLexer()
	if err != nil {
		return nil, err
	}
	scanner, err := lexer.Scanner([]byte(src))
	if err != nil {
		return nil, fmt.Errorf("tokenstream: starting scanner: %w", err)
	}

	var tokens []Token
	for {
		tok, err, eof := scanner.Next()
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				return nil, fmt.Errorf("tokenstream: unconsumed input at byte %d", ui.FailTC)
			}
			return nil, fmt.Errorf("tokenstream: %w", err)
		}
		if eof {
			break
		}
		if tok == nil {
			continue // skipped (whitespace)
		}
		lt := tok.(*lexmachine.Token)
		tokens = append(tokens, Token{
			Type:   tokenNames[lt.Type],
			Lexeme: string(lt.Lexeme),
			Position: parsec.Position{
				Line:   int32(lt.StartLine),
				Column: int32(lt.StartColumn),
			},
		})
	}
	return tokens, nil
}
