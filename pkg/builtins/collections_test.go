package builtins

import (
	"testing"

	"github.com/Frawstcrabs/IndividualProject/pkg/value"
)

func TestBuiltinListConstructs(t *testing.T) {
	v, err := builtinList(noPos, []value.Value{value.Int(1), value.Str("a")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind() != value.KindList || v.AsList().Len() != 2 {
		t.Errorf("got %v, want a 2-element List", v)
	}
}

func TestBuiltinListEmpty(t *testing.T) {
	v, err := builtinList(noPos, nil)
	if err != nil || v.AsList().Len() != 0 {
		t.Fatalf("list() = %v, %v, want empty list, nil", v, err)
	}
}

func TestBuiltinMapConstructs(t *testing.T) {
	v, err := builtinMap(noPos, []value.Value{value.Str("a"), value.Int(1), value.Str("b"), value.Int(2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := v.AsMap()
	got, ok := m.Get("a")
	if !ok || got.AsInt() != 1 {
		t.Errorf("m.Get(a) = %v, %v, want 1, true", got, ok)
	}
}

func TestBuiltinMapOddArgsErrors(t *testing.T) {
	if _, err := builtinMap(noPos, []value.Value{value.Str("a")}); err == nil {
		t.Error("expected an error for an odd number of map arguments")
	}
}

func TestBuiltinMapStringifiesKeys(t *testing.T) {
	v, err := builtinMap(noPos, []value.Value{value.Int(1), value.Str("one")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := v.AsMap().Get("1")
	if !ok || got.AsStr() != "one" {
		t.Errorf("m.Get(\"1\") = %v, %v, want \"one\", true", got, ok)
	}
}
