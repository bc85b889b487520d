package parsec

import "testing"

func TestAdvanceChar(t *testing.T) {
	p := StartPosition
	p = AdvanceChar(p, 'a')
	if p != (Position{Line: 1, Column: 2}) {
		t.Errorf("unexpected position after 'a': %v", p)
	}
	p = AdvanceChar(p, '\n')
	if p != (Position{Line: 2, Column: 1}) {
		t.Errorf("unexpected position after newline: %v", p)
	}
}

func TestNoAdvance(t *testing.T) {
	p := StartPosition
	if got := NoAdvance(p, 42); got != p {
		t.Errorf("NoAdvance moved the position: %v", got)
	}
}

func TestPositionLess(t *testing.T) {
	a := Position{Line: 1, Column: 5}
	b := Position{Line: 2, Column: 1}
	if !a.Less(b) {
		t.Errorf("expected %v < %v", a, b)
	}
	if !a.LessOrEqual(a) {
		t.Errorf("expected %v <= %v", a, a)
	}
}
