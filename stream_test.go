package parsec

import "testing"

func TestCharStreamUncons(t *testing.T) {
	s := NewCharStream("ab")
	c, tail, ok := s.Uncons()
	if !ok || c != 'a' {
		t.Fatalf("expected 'a', got %v ok=%v", c, ok)
	}
	c, tail, ok = tail.Uncons()
	if !ok || c != 'b' {
		t.Fatalf("expected 'b', got %v ok=%v", c, ok)
	}
	_, _, ok = tail.Uncons()
	if ok {
		t.Fatalf("expected exhaustion")
	}
}

func TestCharStreamCloneIndependence(t *testing.T) {
	s := NewCharStream("xyz")
	_, rest, _ := s.Uncons()
	// Consuming rest must not affect s: streams are referentially pure
	// w.r.t. clones.
	_, _, _ = rest.Uncons()
	c, _, ok := s.Uncons()
	if !ok || c != 'x' {
		t.Fatalf("original stream was mutated by consuming a derived one")
	}
}

func TestSliceStreamUncons(t *testing.T) {
	s := NewSliceStream([]int{1, 2, 3})
	v, tail, ok := s.Uncons()
	if !ok || v != 1 {
		t.Fatalf("expected 1, got %v ok=%v", v, ok)
	}
	v, _, ok = tail.Uncons()
	if !ok || v != 2 {
		t.Fatalf("expected 2, got %v ok=%v", v, ok)
	}
}

func TestSliceStreamExhaustion(t *testing.T) {
	s := NewSliceStream([]int{})
	_, _, ok := s.Uncons()
	if ok {
		t.Fatalf("expected exhaustion on empty slice")
	}
}

func TestRemaining(t *testing.T) {
	_, state, err := ParseString(Literal("ab"), "abcd")
	if err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}
	rest, ok := Remaining(state.Input)
	if !ok || rest != "cd" {
		t.Fatalf("expected remaining \"cd\", got %q ok=%v", rest, ok)
	}
}
