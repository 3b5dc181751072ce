package builtins

import (
	"github.com/Frawstcrabs/IndividualProject/pkg/ast"
	"github.com/Frawstcrabs/IndividualProject/pkg/langerr"
	"github.com/Frawstcrabs/IndividualProject/pkg/value"
)

func arity(pos ast.Position, head string, args []value.Value, want int) error {
	if len(args) != want {
		return langerr.New(langerr.Arity, pos, head, "%s expects %d argument(s), got %d", head, want, len(args))
	}
	return nil
}

func arityAtLeast(pos ast.Position, head string, args []value.Value, min int) error {
	if len(args) < min {
		return langerr.New(langerr.Arity, pos, head, "%s expects at least %d argument(s), got %d", head, min, len(args))
	}
	return nil
}

func num(pos ast.Position, head string, v value.Value) (value.Value, error) {
	n, ok := value.CoerceNumber(v)
	if !ok {
		return value.Value{}, langerr.New(langerr.Type, pos, head, "expected a number, got %s", v.TypeName())
	}
	return n, nil
}
