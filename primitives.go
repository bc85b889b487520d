package parsec

import "unicode"

// Satisfy builds a Parser that consumes one token and succeeds iff pred
// reports true for it, using advance to compute the resulting Position.
// It is the generic core that every other one-token primitive in this file
// is a thin specialization of: State is an immutable value, so simply not
// returning the advanced state on the failure path is enough to roll back
// — there is nothing to explicitly undo.
func Satisfy[T any](advance Advance[T], pred func(T) bool) Parser[T, T] {
	return func(s State[T]) (T, State[T], error) {
		tok, next, ok := s.uncons(advance)
		if !ok {
			var zero T
			return zero, s, messageError(s.Position, "End of input")
		}
		if !pred(tok) {
			var zero T
			return zero, s, unexpectedError(s.Position, tok)
		}
		return tok, next, nil
	}
}

// Token is the generic "consume one, unconditionally" primitive for
// non-character streams: it never inspects the token, so it never fails
// except on exhaustion. advance is almost always NoAdvance for a generic
// token stream.
func Token[T any](advance Advance[T]) Parser[T, T] {
	return Satisfy(advance, func(T) bool { return true })
}

// AnyChar consumes any single character.
func AnyChar() Parser[rune, rune] {
	return Token[rune](AdvanceChar)
}

// SatisfyChar builds a character primitive with the standard AdvanceChar
// position rule — the common case for grammars built over strings.
func SatisfyChar(pred func(rune) bool) Parser[rune, rune] {
	return Satisfy(AdvanceChar, pred)
}

// Space parses one whitespace character, per unicode.IsSpace.
func Space() Parser[rune, rune] {
	return SatisfyChar(unicode.IsSpace)
}

// Digit parses one decimal digit. Failing on a non-digit produces
// Message("Expected digit") rather than Unexpected.
func Digit() Parser[rune, rune] {
	return func(s State[rune]) (rune, State[rune], error) {
		c, next, ok := s.uncons(AdvanceChar)
		if !ok {
			return 0, s, messageError(s.Position, "End of input")
		}
		if !unicode.IsDigit(c) {
			return 0, s, messageError(s.Position, "Expected digit")
		}
		return c, next, nil
	}
}

// Literal parses the exact string target, character by character. On the
// first mismatch it reports Expected(target) at the position of the
// mismatch (not the position where Literal started); on exhaustion
// mid-match it propagates the exhaustion error.
func Literal(target string) Parser[rune, string] {
	runes := []rune(target)
	return func(s State[rune]) (string, State[rune], error) {
		cur := s
		for _, want := range runes {
			got, next, ok := cur.uncons(AdvanceChar)
			if !ok {
				return "", s, messageError(cur.Position, "End of input")
			}
			if got != want {
				return "", s, expectedError(cur.Position, target)
			}
			cur = next
		}
		return target, cur, nil
	}
}
