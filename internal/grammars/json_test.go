package grammars

import (
	"testing"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

func getKey(t *testing.T, m *linkedhashmap.Map, key string) any {
	t.Helper()
	v, ok := m.Get(key)
	if !ok {
		t.Fatalf("missing key %q", key)
	}
	return v
}

func TestNumberParser(t *testing.T) {
	res, err := JSON().ParseString("77")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, ok := res.(int); !ok || n != 77 {
		t.Fatalf("expected 77, got %v", res)
	}
}

func TestNegativeNumberParser(t *testing.T) {
	res, err := JSON().ParseString("-19")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, ok := res.(int); !ok || n != -19 {
		t.Fatalf("expected -19, got %v", res)
	}
}

func TestStringParser(t *testing.T) {
	res, err := JSON().ParseString(`"some string here "`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s, ok := res.(string); !ok || s != "some string here " {
		t.Fatalf("got bad string: %v", res)
	}
}

func TestBoolean(t *testing.T) {
	res1, err := JSON().ParseString("false")
	if s, ok := res1.(bool); !ok || s != false || err != nil {
		t.Fatalf("unexpected: %v %v", res1, err)
	}
	res2, err := JSON().ParseString("true")
	if s, ok := res2.(bool); !ok || s != true || err != nil {
		t.Fatalf("unexpected: %v %v", res2, err)
	}
}

func TestNull(t *testing.T) {
	res, err := JSON().ParseString("null")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != nil {
		t.Fatalf("expected nil, got %v", res)
	}
}

func TestArray(t *testing.T) {
	res0, err := JSON().ParseString(`   [   77, "str here", false   ]   `)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := res0.([]any)

	if len(res) != 3 {
		t.Fatalf("expected 3 elements, got %v", res)
	}
	if res[0].(int) != 77 {
		t.Fatalf("expected 77, got %v", res[0])
	}
	if res[1].(string) != "str here" {
		t.Fatalf("expected \"str here\", got %v", res[1])
	}
	if res[2].(bool) != false {
		t.Fatalf("expected false, got %v", res[2])
	}
}

func TestObject(t *testing.T) {
	res0, err := JSON().ParseString(`  { "key1" :   -19  , "kek":"str"}  `)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res := res0.(*linkedhashmap.Map)
	if res.Size() != 2 {
		t.Fatalf("expected 2 keys, got %d", res.Size())
	}
	if v := getKey(t, res, "key1"); v.(int) != -19 {
		t.Fatalf("expected -19, got %v", v)
	}
	if v := getKey(t, res, "kek"); v.(string) != "str" {
		t.Fatalf("expected \"str\", got %v", v)
	}

	// insertion order must be preserved: key1 before kek.
	keys := res.Keys()
	if keys[0].(string) != "key1" || keys[1].(string) != "kek" {
		t.Fatalf("expected insertion order [key1 kek], got %v", keys)
	}
}

func TestNestedArrays(t *testing.T) {
	res0, err := JSON().ParseString("[ 7, [0, 2] ]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := res0.([]any)
	if n, ok := res[0].(int); !ok || n != 7 {
		t.Fatalf("expected 7, got %v", res[0])
	}

	inner, ok := res[1].([]any)
	if !ok {
		t.Fatalf("expected nested array, got %v", res[1])
	}
	if n, ok := inner[0].(int); !ok || n != 0 {
		t.Fatalf("expected 0, got %v", inner[0])
	}
	if n, ok := inner[1].(int); !ok || n != 2 {
		t.Fatalf("expected 2, got %v", inner[1])
	}
}

func TestNestedObjects(t *testing.T) {
	res0, err := JSON().ParseString(`{ "arr": [1,-8], "obj":{"k":"v"}, "empty"  : {} }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := res0.(*linkedhashmap.Map)

	arr := getKey(t, res, "arr").([]any)
	if n, ok := arr[0].(int); !ok || n != 1 {
		t.Fatalf("expected 1, got %v", arr[0])
	}
	if n, ok := arr[1].(int); !ok || n != -8 {
		t.Fatalf("expected -8, got %v", arr[1])
	}

	obj := getKey(t, res, "obj").(*linkedhashmap.Map)
	if v, ok := obj.Get("k"); !ok || v.(string) != "v" {
		t.Fatalf("expected \"v\", got %v", v)
	}

	empty := getKey(t, res, "empty").(*linkedhashmap.Map)
	if empty.Size() != 0 {
		t.Fatalf("expected empty object, got %v", empty)
	}
}

func TestTrailingGarbageRejected(t *testing.T) {
	_, err := JSON().ParseString("77 extra")
	if err == nil {
		t.Fatalf("expected trailing garbage to be rejected")
	}
}
