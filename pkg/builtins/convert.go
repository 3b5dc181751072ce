package builtins

import (
	"strconv"

	"github.com/Frawstcrabs/IndividualProject/pkg/ast"
	"github.com/Frawstcrabs/IndividualProject/pkg/jsonvalue"
	"github.com/Frawstcrabs/IndividualProject/pkg/langerr"
	"github.com/Frawstcrabs/IndividualProject/pkg/value"
)

func builtinStr(pos ast.Position, args []value.Value) (value.Value, error) {
	if err := arity(pos, "str", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Str(args[0].String()), nil
}

func builtinInt(pos ast.Position, args []value.Value) (value.Value, error) {
	if err := arity(pos, "int", args, 1); err != nil {
		return value.Value{}, err
	}
	v := args[0]
	switch v.Kind() {
	case value.KindInt:
		return v, nil
	case value.KindFloat:
		return value.Int(int64(v.AsFloat())), nil
	case value.KindBool:
		if v.AsBool() {
			return value.Int(1), nil
		}
		return value.Int(0), nil
	case value.KindStr:
		if i, err := strconv.ParseInt(v.AsStr(), 10, 64); err == nil {
			return value.Int(i), nil
		}
		if f, err := strconv.ParseFloat(v.AsStr(), 64); err == nil {
			return value.Int(int64(f)), nil
		}
		return value.Value{}, langerr.New(langerr.ValueErr, pos, "int", "cannot parse %q as a number", v.AsStr())
	default:
		return value.Value{}, langerr.New(langerr.Type, pos, "int", "cannot convert a %s to Int", v.TypeName())
	}
}

func builtinFloat(pos ast.Position, args []value.Value) (value.Value, error) {
	if err := arity(pos, "float", args, 1); err != nil {
		return value.Value{}, err
	}
	v := args[0]
	switch v.Kind() {
	case value.KindFloat:
		return v, nil
	case value.KindInt:
		return value.Float(float64(v.AsInt())), nil
	case value.KindStr:
		if f, err := strconv.ParseFloat(v.AsStr(), 64); err == nil {
			return value.Float(f), nil
		}
		return value.Value{}, langerr.New(langerr.ValueErr, pos, "float", "cannot parse %q as a number", v.AsStr())
	default:
		return value.Value{}, langerr.New(langerr.Type, pos, "float", "cannot convert a %s to Float", v.TypeName())
	}
}

func builtinBool(pos ast.Position, args []value.Value) (value.Value, error) {
	if err := arity(pos, "bool", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Bool(args[0].Truthy()), nil
}

func builtinType(pos ast.Position, args []value.Value) (value.Value, error) {
	if err := arity(pos, "type", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Str(args[0].TypeName()), nil
}

func builtinToJSON(pos ast.Position, args []value.Value) (value.Value, error) {
	if err := arity(pos, "tojson", args, 1); err != nil {
		return value.Value{}, err
	}
	s, err := jsonvalue.Marshal(args[0])
	if err != nil {
		return value.Value{}, langerr.Wrap(langerr.ValueErr, pos, "tojson", err, "%s", err.Error())
	}
	return value.Str(s), nil
}

func builtinFromJSON(pos ast.Position, args []value.Value) (value.Value, error) {
	if err := arity(pos, "fromjson", args, 1); err != nil {
		return value.Value{}, err
	}
	if args[0].Kind() != value.KindStr {
		return value.Value{}, langerr.New(langerr.Type, pos, "fromjson", "fromjson expects a Str, got %s", args[0].TypeName())
	}
	v, err := jsonvalue.Unmarshal(args[0].AsStr())
	if err != nil {
		return value.Value{}, langerr.Wrap(langerr.ValueErr, pos, "fromjson", err, "%s", err.Error())
	}
	return v, nil
}
