package tokenstream

import (
	"strconv"

	"github.com/parsekit-go/parsec"
)

// Arith is a small four-function arithmetic grammar operating directly on
// a Token stream rather than characters — the demo grammar DOMAIN STACK
// promises for exercising position tracking over a non-character stream.
// Precedence follows the usual term/factor split; '(' ')' group
// sub-expressions. Built with Lazy for the factor → expr recursion, the
// same device internal/grammars/expr.go uses for its character-stream
// recursion.
func Arith() parsec.Parser[Token, int64] {
	var expr parsec.Parser[Token, int64]

	num := parsec.Map(Sym("NUM"), func(t Token) int64 {
		n, _ := strconv.ParseInt(t.Lexeme, 10, 64)
		return n
	})

	factor := parsec.Or(num, parsec.Between(
		Sym("LPAREN"), Sym("RPAREN"),
		parsec.Lazy(func() parsec.Parser[Token, int64] { return expr }),
	))

	mulOp := parsec.Or(Sym("STAR"), Sym("SLASH"))
	term := parsec.Map(
		parsec.And(factor, parsec.Many(parsec.And(mulOp, factor))),
		func(p parsec.Pair[int64, []parsec.Pair[Token, int64]]) int64 {
			acc := p.First
			for _, step := range p.Second {
				if step.First.Type == "STAR" {
					acc *= step.Second
				} else {
					acc /= step.Second
				}
			}
			return acc
		},
	)

	addOp := parsec.Or(Sym("PLUS"), Sym("MINUS"))
	expr = parsec.Map(
		parsec.And(term, parsec.Many(parsec.And(addOp, term))),
		func(p parsec.Pair[int64, []parsec.Pair[Token, int64]]) int64 {
			acc := p.First
			for _, step := range p.Second {
				if step.First.Type == "PLUS" {
					acc += step.Second
				} else {
					acc -= step.Second
				}
			}
			return acc
		},
	)

	return expr
}

// Eval tokenizes and parses src as an arithmetic expression, returning its
// integer value. Tokens left over after the expression are an error.
func Eval(src string) (int64, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return 0, err
	}
	v, rest, err := parsec.ParseStream[Token, int64](Arith(), NewStream(tokens))
	if err != nil {
		return 0, err
	}
	if tok, _, ok := rest.Input.Uncons(); ok {
		return 0, &parsec.ParseError{
			Position: tok.Position,
			Reasons:  []parsec.Reason{{Kind: parsec.Message, Text: "unexpected trailing token " + tok.String()}},
		}
	}
	return v, nil
}
