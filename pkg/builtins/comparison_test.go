package builtins

import (
	"testing"

	"github.com/Frawstcrabs/IndividualProject/pkg/value"
)

func TestEqNumericCrossKind(t *testing.T) {
	v, err := builtinEq(noPos, []value.Value{value.Int(2), value.Float(2.0)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.AsBool() {
		t.Error("Int(2) should eq Float(2.0)")
	}
}

func TestEqStrVsIntNeverCoerces(t *testing.T) {
	v, err := builtinEq(noPos, []value.Value{value.Int(2), value.Str("2")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.AsBool() {
		t.Error("Int(2) should NOT eq Str(\"2\") via eq, unlike lt/le/gt/ge which do coerce")
	}
}

func TestNeqInverts(t *testing.T) {
	v, err := builtinNeq(noPos, []value.Value{value.Int(1), value.Int(2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.AsBool() {
		t.Error("1 neq 2 should be true")
	}
}

func TestLtCoercesNumericStrings(t *testing.T) {
	v, err := builtinLt(noPos, []value.Value{value.Str("2"), value.Int(10)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.AsBool() {
		t.Error("\"2\" lt 10 should be true once coerced numerically (not lexicographic, where \"2\" > \"10\")")
	}
}

func TestLtLexicographicForNonNumericStrings(t *testing.T) {
	v, err := builtinLt(noPos, []value.Value{value.Str("apple"), value.Str("banana")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.AsBool() {
		t.Error("\"apple\" lt \"banana\" should be true lexicographically")
	}
}

func TestOrderingMixedKindErrors(t *testing.T) {
	if _, err := builtinLt(noPos, []value.Value{value.Str("abc"), value.Int(1)}); err == nil {
		t.Error("expected an error comparing a non-numeric string against an Int")
	}
}

func TestOrderingListErrors(t *testing.T) {
	if _, err := builtinLt(noPos, []value.Value{value.FromList(value.NewList()), value.FromList(value.NewList())}); err == nil {
		t.Error("expected an error ordering two Lists")
	}
}

func TestNot(t *testing.T) {
	v, err := builtinNot(noPos, []value.Value{value.Bool(false)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.AsBool() {
		t.Error("not(false) should be true")
	}
}

func TestGe(t *testing.T) {
	v, err := builtinGe(noPos, []value.Value{value.Int(5), value.Int(5)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.AsBool() {
		t.Error("5 ge 5 should be true")
	}
}
