// Package tokenstream adapts github.com/timtadh/lexmachine, the DFA-based
// lexer used by npillmayer-gorgo's scanner layer, into a parsec.Stream: a
// restartable, cloneable token iterator, where position tracking for
// non-character streams is a property of the primitive rather than of the
// stream.
package tokenstream

import "github.com/parsekit-go/parsec"

// Token is a single lexed unit: a type name (e.g. "NUM", "PLUS"), the
// matched text, and the position lexmachine recorded for it. Unlike a
// character stream, where Position is derived incrementally token by
// token via parsec.AdvanceChar, a Token already carries its own position —
// see Advance in stream.go.
type Token struct {
	Type     string
	Lexeme   string
	Position parsec.Position
}

func (t Token) String() string {
	return t.Type + "(" + t.Lexeme + ")"
}
