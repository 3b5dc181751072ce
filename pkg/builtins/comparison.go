package builtins

import (
	"github.com/Frawstcrabs/IndividualProject/pkg/ast"
	"github.com/Frawstcrabs/IndividualProject/pkg/langerr"
	"github.com/Frawstcrabs/IndividualProject/pkg/value"
)

func builtinEq(pos ast.Position, args []value.Value) (value.Value, error) {
	if err := arity(pos, "eq", args, 2); err != nil {
		return value.Value{}, err
	}
	return value.Bool(value.Equal(args[0], args[1])), nil
}

func builtinNeq(pos ast.Position, args []value.Value) (value.Value, error) {
	if err := arity(pos, "neq", args, 2); err != nil {
		return value.Value{}, err
	}
	return value.Bool(!value.Equal(args[0], args[1])), nil
}

// ordering implements lt/le/gt/ge: numeric ordering for numbers,
// lexicographic for strings; any other kind (List/Map/Func) is an
// error, per §4.3's "use structural equality only for eq/neq, else
// error".
func ordering(pos ast.Position, head string, args []value.Value, intCmp func(c int) bool) (value.Value, error) {
	if err := arity(pos, head, args, 2); err != nil {
		return value.Value{}, err
	}
	a, b := args[0], args[1]
	if na, ok := value.CoerceNumber(a); ok {
		if nb, ok := value.CoerceNumber(b); ok {
			x, y := na.AsFloat(), nb.AsFloat()
			switch {
			case x < y:
				return value.Bool(intCmp(-1)), nil
			case x > y:
				return value.Bool(intCmp(1)), nil
			default:
				return value.Bool(intCmp(0)), nil
			}
		}
	}
	if a.Kind() == value.KindStr && b.Kind() == value.KindStr {
		switch {
		case a.AsStr() < b.AsStr():
			return value.Bool(intCmp(-1)), nil
		case a.AsStr() > b.AsStr():
			return value.Bool(intCmp(1)), nil
		default:
			return value.Bool(intCmp(0)), nil
		}
	}
	return value.Value{}, langerr.New(langerr.Type, pos, head, "%s requires two numbers or two strings, got %s and %s", head, a.TypeName(), b.TypeName())
}

func builtinLt(pos ast.Position, args []value.Value) (value.Value, error) {
	return ordering(pos, "lt", args, func(c int) bool { return c < 0 })
}

func builtinLe(pos ast.Position, args []value.Value) (value.Value, error) {
	return ordering(pos, "le", args, func(c int) bool { return c <= 0 })
}

func builtinGt(pos ast.Position, args []value.Value) (value.Value, error) {
	return ordering(pos, "gt", args, func(c int) bool { return c > 0 })
}

func builtinGe(pos ast.Position, args []value.Value) (value.Value, error) {
	return ordering(pos, "ge", args, func(c int) bool { return c >= 0 })
}

func builtinNot(pos ast.Position, args []value.Value) (value.Value, error) {
	if err := arity(pos, "not", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Bool(!args[0].Truthy()), nil
}
