package tokenstream

import "testing"

func TestEvalSimpleAddition(t *testing.T) {
	v, err := Eval("2 + 3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 5 {
		t.Fatalf("expected 5, got %d", v)
	}
}

func TestEvalPrecedence(t *testing.T) {
	v, err := Eval("2 + 3 * 4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 14 {
		t.Fatalf("expected 14, got %d", v)
	}
}

func TestEvalParentheses(t *testing.T) {
	v, err := Eval("(2 + 3) * 4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 20 {
		t.Fatalf("expected 20, got %d", v)
	}
}

func TestEvalNestedParens(t *testing.T) {
	v, err := Eval("10 - (2 * (1 + 2))")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 4 {
		t.Fatalf("expected 4, got %d", v)
	}
}

func TestEvalDivision(t *testing.T) {
	v, err := Eval("20 / 4 / 5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 1 {
		t.Fatalf("expected 1, got %d", v)
	}
}

func TestEvalSyntaxError(t *testing.T) {
	_, err := Eval("2 + ")
	if err == nil {
		t.Fatalf("expected a parse error")
	}
}
