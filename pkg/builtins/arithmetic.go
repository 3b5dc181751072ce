package builtins

import (
	"math"

	"github.com/Frawstcrabs/IndividualProject/pkg/ast"
	"github.com/Frawstcrabs/IndividualProject/pkg/langerr"
	"github.com/Frawstcrabs/IndividualProject/pkg/value"
)

func builtinAdd(pos ast.Position, args []value.Value) (value.Value, error) {
	if err := arity(pos, "add", args, 2); err != nil {
		return value.Value{}, err
	}
	a, b := args[0], args[1]
	if a.Kind() == value.KindStr && b.Kind() == value.KindStr {
		return value.Str(a.AsStr() + b.AsStr()), nil
	}
	return numeric2(pos, "add", a, b,
		func(x, y int64) int64 { return x + y },
		func(x, y float64) float64 { return x + y })
}

func builtinSub(pos ast.Position, args []value.Value) (value.Value, error) {
	if err := arity(pos, "sub", args, 2); err != nil {
		return value.Value{}, err
	}
	return numeric2(pos, "sub", args[0], args[1],
		func(x, y int64) int64 { return x - y },
		func(x, y float64) float64 { return x - y })
}

func builtinMul(pos ast.Position, args []value.Value) (value.Value, error) {
	if err := arity(pos, "mul", args, 2); err != nil {
		return value.Value{}, err
	}
	return numeric2(pos, "mul", args[0], args[1],
		func(x, y int64) int64 { return x * y },
		func(x, y float64) float64 { return x * y })
}

// div performs integer division when both operands are Int, else float
// division (SPEC_FULL.md §4.3).
func builtinDiv(pos ast.Position, args []value.Value) (value.Value, error) {
	if err := arity(pos, "div", args, 2); err != nil {
		return value.Value{}, err
	}
	a, err := num(pos, "div", args[0])
	if err != nil {
		return value.Value{}, err
	}
	b, err := num(pos, "div", args[1])
	if err != nil {
		return value.Value{}, err
	}
	if a.Kind() == value.KindInt && b.Kind() == value.KindInt {
		if b.AsInt() == 0 {
			return value.Value{}, langerr.New(langerr.ValueErr, pos, "div", "division by zero")
		}
		return value.Int(a.AsInt() / b.AsInt()), nil
	}
	if b.AsFloat() == 0 {
		return value.Value{}, langerr.New(langerr.ValueErr, pos, "div", "division by zero")
	}
	return value.Float(a.AsFloat() / b.AsFloat()), nil
}

// fdiv always divides as floats, regardless of operand kinds.
func builtinFdiv(pos ast.Position, args []value.Value) (value.Value, error) {
	if err := arity(pos, "fdiv", args, 2); err != nil {
		return value.Value{}, err
	}
	a, err := num(pos, "fdiv", args[0])
	if err != nil {
		return value.Value{}, err
	}
	b, err := num(pos, "fdiv", args[1])
	if err != nil {
		return value.Value{}, err
	}
	if b.AsFloat() == 0 {
		return value.Value{}, langerr.New(langerr.ValueErr, pos, "fdiv", "division by zero")
	}
	return value.Float(a.AsFloat() / b.AsFloat()), nil
}

// mod stays Int for two Ints; a mixed Int/Float pair promotes to Float
// and uses math.Mod (Open Question resolution, SPEC_FULL.md §9 NEW).
func builtinMod(pos ast.Position, args []value.Value) (value.Value, error) {
	if err := arity(pos, "mod", args, 2); err != nil {
		return value.Value{}, err
	}
	a, err := num(pos, "mod", args[0])
	if err != nil {
		return value.Value{}, err
	}
	b, err := num(pos, "mod", args[1])
	if err != nil {
		return value.Value{}, err
	}
	if a.Kind() == value.KindInt && b.Kind() == value.KindInt {
		if b.AsInt() == 0 {
			return value.Value{}, langerr.New(langerr.ValueErr, pos, "mod", "modulus by zero")
		}
		return value.Int(a.AsInt() % b.AsInt()), nil
	}
	if b.AsFloat() == 0 {
		return value.Value{}, langerr.New(langerr.ValueErr, pos, "mod", "modulus by zero")
	}
	return value.Float(math.Mod(a.AsFloat(), b.AsFloat())), nil
}

func builtinNeg(pos ast.Position, args []value.Value) (value.Value, error) {
	if err := arity(pos, "neg", args, 1); err != nil {
		return value.Value{}, err
	}
	a, err := num(pos, "neg", args[0])
	if err != nil {
		return value.Value{}, err
	}
	if a.Kind() == value.KindInt {
		return value.Int(-a.AsInt()), nil
	}
	return value.Float(-a.AsFloat()), nil
}

// numeric2 implements the shared "mixed Int/Float promotes to Float"
// rule: both operands coerce to numbers, and the result stays Int only
// when both operands are Int.
func numeric2(pos ast.Position, head string, a, b value.Value, ints func(x, y int64) int64, floats func(x, y float64) float64) (value.Value, error) {
	na, err := num(pos, head, a)
	if err != nil {
		return value.Value{}, err
	}
	nb, err := num(pos, head, b)
	if err != nil {
		return value.Value{}, err
	}
	if na.Kind() == value.KindInt && nb.Kind() == value.KindInt {
		return value.Int(ints(na.AsInt(), nb.AsInt())), nil
	}
	return value.Float(floats(na.AsFloat(), nb.AsFloat())), nil
}
