package parsec

// Pair is the output type of And: the two values produced by running one
// parser then another. Go has no anonymous tuple type, so this stands in
// for the pair (p's value, q's value).
type Pair[A any, B any] struct {
	First  A
	Second B
}

// Maybe is the output type of Optional: a present value or none.
type Maybe[O any] struct {
	Value   O
	Present bool
}

// And runs p then q; on either failure it propagates that failure
// unmodified (no merging). On success it returns the pair of both values.
func And[T any, A any, B any](p Parser[T, A], q Parser[T, B]) Parser[T, Pair[A, B]] {
	return func(s State[T]) (Pair[A, B], State[T], error) {
		a, next, err := p(s)
		if err != nil {
			var zero Pair[A, B]
			return zero, s, err
		}
		b, final, err := q(next)
		if err != nil {
			var zero Pair[A, B]
			return zero, s, err
		}
		return Pair[A, B]{First: a, Second: b}, final, nil
	}
}

// With runs p then q, discarding p's value and returning q's.
func With[T any, A any, B any](p Parser[T, A], q Parser[T, B]) Parser[T, B] {
	return func(s State[T]) (B, State[T], error) {
		pair, next, err := And(p, q)(s)
		if err != nil {
			var zero B
			return zero, s, err
		}
		return pair.Second, next, nil
	}
}

// Skip runs p then q, discarding q's value and returning p's.
func Skip[T any, A any, B any](p Parser[T, A], q Parser[T, B]) Parser[T, A] {
	return func(s State[T]) (A, State[T], error) {
		pair, next, err := And(p, q)(s)
		if err != nil {
			var zero A
			return zero, s, err
		}
		return pair.First, next, nil
	}
}

// Between parses open, then body, then close, and returns body's value.
// Defined as With(open, Skip(body, close)).
func Between[T any, A any, B any, C any](open Parser[T, A], close Parser[T, B], body Parser[T, C]) Parser[T, C] {
	return With(open, Skip(body, close))
}

// Or tries p against a clone of the incoming state (cheap: State is a
// value). On success it returns that result. On failure it tries q against
// the *original* incoming state — unconditional backtracking: q runs
// regardless of how much input p consumed before failing. If both fail,
// the two errors are
// merged: e1's position is kept, and every reason from e2 not already
// present is appended.
func Or[T any, O any](p Parser[T, O], q Parser[T, O]) Parser[T, O] {
	return func(s State[T]) (O, State[T], error) {
		if v, next, err := p(s); err == nil {
			return v, next, nil
		} else if v2, next2, err2 := q(s); err2 == nil {
			return v2, next2, nil
		} else {
			merged := asParseError(err).merge(asParseError(err2))
			var zero O
			return zero, s, merged
		}
	}
}

// Or is also available as a method for the common case where both
// alternatives already share an output type, since that case needs no
// extra type parameter on the method (Go does not allow generic methods to
// introduce type parameters beyond the receiver's — see Map/And/With/Skip,
// which therefore stay free functions, following the same split the
// jhbrown-veradept gophercon22 parser-combinators package uses).
func (p Parser[T, O]) Or(q Parser[T, O]) Parser[T, O] {
	return Or(p, q)
}

// Message is also available as a method, for the same reason as Or: it
// needs no new type parameter.
func (p Parser[T, O]) Message(label string) Parser[T, O] {
	return Message(p, label)
}

// Optional attempts p; on success it returns Maybe{Value, true} and the
// advanced state. On failure it returns Maybe{Present: false} and the
// original state, without propagating the failure — Optional never fails.
func Optional[T any, O any](p Parser[T, O]) Parser[T, Maybe[O]] {
	return func(s State[T]) (Maybe[O], State[T], error) {
		if v, next, err := p(s); err == nil {
			return Maybe[O]{Value: v, Present: true}, next, nil
		}
		return Maybe[O]{}, s, nil
	}
}

// ManyAppend is the canonical repetition engine: it applies p zero or more
// times, pushing each result into the caller-owned buffer, and returns the
// state reached at the first failure of p (which is silently discarded).
// Many and Many1 are thin shells over it. The buffer is
// exclusively owned by this call for its duration — nothing else may touch
// it while ManyAppend is running.
func ManyAppend[T any, O any](p Parser[T, O], buffer *[]O) Parser[T, struct{}] {
	return func(s State[T]) (struct{}, State[T], error) {
		cur := s
		for {
			v, next, err := p(cur)
			if err != nil {
				return struct{}{}, cur, nil
			}
			*buffer = append(*buffer, v)
			cur = next
		}
	}
}

// Many parses p zero or more times and returns the ordered sequence of
// results. It always succeeds.
func Many[T any, O any](p Parser[T, O]) Parser[T, []O] {
	return func(s State[T]) ([]O, State[T], error) {
		results := make([]O, 0)
		_, next, _ := ManyAppend(p, &results)(s)
		return results, next, nil
	}
}

// Many1 parses p one or more times. It fails iff the first application of
// p fails, propagating that failure; otherwise it behaves as Many.
func Many1[T any, O any](p Parser[T, O]) Parser[T, []O] {
	return func(s State[T]) ([]O, State[T], error) {
		first, next, err := p(s)
		if err != nil {
			return nil, s, err
		}
		results := []O{first}
		_, final, _ := ManyAppend(p, &results)(next)
		return results, final, nil
	}
}

// SepBy parses zero or more applications of p, separated by sep. It does
// not consume a trailing separator: the (sep, p) pair is attempted
// atomically against a clone of the pre-attempt state, so a consumed
// separator followed by a failing p rewinds the whole combinator back to
// the state before that separator.
func SepBy[T any, O any, S any](p Parser[T, O], sep Parser[T, S]) Parser[T, []O] {
	return sepBy(p, sep, 0)
}

// SepBy1 is the one-or-more variant of SepBy: it fails if p cannot be
// parsed at least once. A direct, low-cost generalization of SepBy with a
// minimum count.
func SepBy1[T any, O any, S any](p Parser[T, O], sep Parser[T, S]) Parser[T, []O] {
	return sepBy(p, sep, 1)
}

func sepBy[T any, O any, S any](p Parser[T, O], sep Parser[T, S], min int) Parser[T, []O] {
	return func(s State[T]) ([]O, State[T], error) {
		results := make([]O, 0)
		first, next, err := p(s)
		if err != nil {
			if min > 0 {
				return nil, s, err
			}
			return results, s, nil
		}
		results = append(results, first)
		cur := next
		for {
			pairState := cur
			_, sepNext, sepErr := sep(pairState)
			if sepErr != nil {
				break
			}
			v, afterP, pErr := p(sepNext)
			if pErr != nil {
				break
			}
			results = append(results, v)
			cur = afterP
		}
		return results, cur, nil
	}
}

// Map applies a pure function to p's output. Failure passes through
// unchanged.
func Map[T any, A any, B any](p Parser[T, A], f func(A) B) Parser[T, B] {
	return func(s State[T]) (B, State[T], error) {
		v, next, err := p(s)
		if err != nil {
			var zero B
			return zero, s, err
		}
		return f(v), next, nil
	}
}

// Message passes a success through unchanged. On failure it appends
// Message(label) to the error's reason list (deduplicated); Position is
// unchanged. This is how grammar authors label productions for
// diagnostics.
func Message[T any, O any](p Parser[T, O], label string) Parser[T, O] {
	return func(s State[T]) (O, State[T], error) {
		v, next, err := p(s)
		if err != nil {
			return v, s, asParseError(err).withMessage(label)
		}
		return v, next, nil
	}
}
