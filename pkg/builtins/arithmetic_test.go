package builtins

import (
	"testing"

	"github.com/Frawstcrabs/IndividualProject/pkg/ast"
	"github.com/Frawstcrabs/IndividualProject/pkg/value"
)

var noPos = ast.Position{}

func TestAddStringsConcatenate(t *testing.T) {
	v, err := builtinAdd(noPos, []value.Value{value.Str("foo"), value.Str("bar")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.AsStr() != "foobar" {
		t.Errorf("got %q, want %q", v.AsStr(), "foobar")
	}
}

func TestAddNumericStringsCoerce(t *testing.T) {
	v, err := builtinAdd(noPos, []value.Value{value.Str("2"), value.Int(3)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind() != value.KindInt || v.AsInt() != 5 {
		t.Errorf("got %v, want Int(5)", v)
	}
}

func TestAddMixedIntFloatPromotesToFloat(t *testing.T) {
	v, err := builtinAdd(noPos, []value.Value{value.Int(2), value.Float(0.5)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind() != value.KindFloat || v.AsFloat() != 2.5 {
		t.Errorf("got %v, want Float(2.5)", v)
	}
}

func TestDivIntegerDivision(t *testing.T) {
	v, err := builtinDiv(noPos, []value.Value{value.Int(7), value.Int(2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind() != value.KindInt || v.AsInt() != 3 {
		t.Errorf("got %v, want Int(3)", v)
	}
}

func TestDivByZeroErrors(t *testing.T) {
	if _, err := builtinDiv(noPos, []value.Value{value.Int(1), value.Int(0)}); err == nil {
		t.Error("expected a division-by-zero error")
	}
}

func TestFdivAlwaysFloat(t *testing.T) {
	v, err := builtinFdiv(noPos, []value.Value{value.Int(7), value.Int(2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind() != value.KindFloat || v.AsFloat() != 3.5 {
		t.Errorf("got %v, want Float(3.5)", v)
	}
}

func TestModByZeroErrors(t *testing.T) {
	if _, err := builtinMod(noPos, []value.Value{value.Int(1), value.Int(0)}); err == nil {
		t.Error("expected a modulus-by-zero error")
	}
}

func TestModIntStaysInt(t *testing.T) {
	v, err := builtinMod(noPos, []value.Value{value.Int(7), value.Int(3)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind() != value.KindInt || v.AsInt() != 1 {
		t.Errorf("got %v, want Int(1)", v)
	}
}

func TestNegInt(t *testing.T) {
	v, err := builtinNeg(noPos, []value.Value{value.Int(5)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind() != value.KindInt || v.AsInt() != -5 {
		t.Errorf("got %v, want Int(-5)", v)
	}
}

func TestArithmeticNonNumericErrors(t *testing.T) {
	if _, err := builtinAdd(noPos, []value.Value{value.Bool(true), value.Int(1)}); err == nil {
		t.Error("expected an error adding a Bool to an Int")
	}
}
