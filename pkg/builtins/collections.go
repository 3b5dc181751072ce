package builtins

import (
	"github.com/Frawstcrabs/IndividualProject/pkg/ast"
	"github.com/Frawstcrabs/IndividualProject/pkg/langerr"
	"github.com/Frawstcrabs/IndividualProject/pkg/value"
)

func builtinList(pos ast.Position, args []value.Value) (value.Value, error) {
	return value.FromList(value.NewList(args...)), nil
}

// map:k1:v1:k2:v2:... constructs a Map; keys are stringified (§4.3).
func builtinMap(pos ast.Position, args []value.Value) (value.Value, error) {
	if len(args)%2 != 0 {
		return value.Value{}, langerr.New(langerr.Arity, pos, "map", "map expects an even number of key/value arguments, got %d", len(args))
	}
	m := value.NewMap()
	for i := 0; i < len(args); i += 2 {
		m.Set(args[i].String(), args[i+1])
	}
	return value.FromMap(m), nil
}
