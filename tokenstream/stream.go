package tokenstream

import "github.com/parsekit-go/parsec"

// NewStream wraps an already-lexed token slice as a parsec.Stream[Token].
// parsec.NewSliceStream already satisfies the cheap-clone requirement (a
// reused slice header), so no bespoke Stream implementation is needed here —
// only the Advance rule below is specific to tokens.
func NewStream(tokens []Token) parsec.Stream[Token] {
	return parsec.NewSliceStream(tokens)
}

// Advance is the token-stream counterpart to parsec.AdvanceChar: rather
// than compute the next position from the consumed value (there is no
// general rule for an arbitrary token type), each Token already carries
// the position lexmachine recorded for it, so Advance simply adopts it.
// Position tracking is supplied as a parameter to uncons, not baked into
// Stream, which is what makes this possible.
func Advance(_ parsec.Position, tok Token) parsec.Position {
	return tok.Position
}

// Sym builds a Parser that accepts exactly one token of the given type,
// the token-stream analogue of parsec.SatisfyChar for a literal character.
func Sym(tokenType string) parsec.Parser[Token, Token] {
	return parsec.Message(
		parsec.Satisfy(Advance, func(t Token) bool { return t.Type == tokenType }),
		"Expected "+tokenType,
	)
}
