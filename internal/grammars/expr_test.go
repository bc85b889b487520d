package grammars

import "testing"

func TestParseExprListScenario(t *testing.T) {
	v, err := ParseExprList("int, 100, [[], 123]")
	if err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}
	if len(v) != 3 {
		t.Fatalf("expected 3 exprs, got %v", v)
	}
	if !v[0].IsId || v[0].Id != "int" {
		t.Fatalf("expected Id(int), got %+v", v[0])
	}
	if !v[1].IsInt || v[1].Int != 100 {
		t.Fatalf("expected Int(100), got %+v", v[1])
	}
	if len(v[2].Array) != 2 || len(v[2].Array[0].Array) != 0 || v[2].Array[1].Int != 123 {
		t.Fatalf("expected Array([Array([]), Int(123)]), got %+v", v[2])
	}
}

func TestParseExprListError(t *testing.T) {
	_, err := ParseExprList("\n,123\n")
	if err == nil {
		t.Fatalf("expected failure")
	}
}

func TestParseExprSingleIdentifier(t *testing.T) {
	v, err := ParseExprList("hello")
	if err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}
	if len(v) != 1 || !v[0].IsId || v[0].Id != "hello" {
		t.Fatalf("unexpected result: %+v", v)
	}
}
