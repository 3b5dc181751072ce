package builtins

import (
	"unicode/utf8"

	"github.com/Frawstcrabs/IndividualProject/pkg/ast"
	"github.com/Frawstcrabs/IndividualProject/pkg/langerr"
	"github.com/Frawstcrabs/IndividualProject/pkg/value"
)

// Method dispatches a path-qualified call such as {mylist.push:x;} or
// {mymap.has:k;}: name is the call head's final .field segment, recv is
// the value everything before it resolved to, and args are the call's
// already-evaluated arguments.
func Method(name string, pos ast.Position, recv value.Value, args []value.Value) (value.Value, error) {
	switch recv.Kind() {
	case value.KindList:
		return listMethod(name, pos, recv.AsList(), args)
	case value.KindMap:
		return mapMethod(name, pos, recv.AsMap(), args)
	case value.KindStr:
		return strMethod(name, pos, recv.AsStr(), args)
	default:
		return value.Value{}, langerr.New(langerr.Type, pos, name, "%s has no method '.%s'", recv.TypeName(), name)
	}
}

func listMethod(name string, pos ast.Position, lst *value.List, args []value.Value) (value.Value, error) {
	switch name {
	case "length":
		if err := arity(pos, "length", args, 0); err != nil {
			return value.Value{}, err
		}
		return value.Int(int64(lst.Len())), nil
	case "index":
		if err := arity(pos, "index", args, 1); err != nil {
			return value.Value{}, err
		}
		return value.Int(int64(lst.IndexOf(args[0]))), nil
	case "push":
		if err := arity(pos, "push", args, 1); err != nil {
			return value.Value{}, err
		}
		lst.Push(args[0])
		return value.Nil(), nil
	case "pop":
		if err := arity(pos, "pop", args, 0); err != nil {
			return value.Value{}, err
		}
		v, ok := lst.Pop()
		if !ok {
			return value.Value{}, langerr.New(langerr.Index, pos, "pop", "pop from an empty list")
		}
		return v, nil
	default:
		return value.Value{}, langerr.New(langerr.Name, pos, name, "list has no method '.%s'", name)
	}
}

func mapMethod(name string, pos ast.Position, mp *value.Map, args []value.Value) (value.Value, error) {
	switch name {
	case "length":
		if err := arity(pos, "length", args, 0); err != nil {
			return value.Value{}, err
		}
		return value.Int(int64(mp.Len())), nil
	case "keys":
		if err := arity(pos, "keys", args, 0); err != nil {
			return value.Value{}, err
		}
		keys := mp.Keys()
		items := make([]value.Value, len(keys))
		for i, k := range keys {
			items[i] = value.Str(k)
		}
		return value.FromList(value.NewList(items...)), nil
	case "values":
		if err := arity(pos, "values", args, 0); err != nil {
			return value.Value{}, err
		}
		return value.FromList(value.NewList(mp.Values()...)), nil
	case "has":
		if err := arity(pos, "has", args, 1); err != nil {
			return value.Value{}, err
		}
		return value.Bool(mp.Has(args[0].String())), nil
	default:
		return value.Value{}, langerr.New(langerr.Name, pos, name, "map has no method '.%s'", name)
	}
}

func strMethod(name string, pos ast.Position, s string, args []value.Value) (value.Value, error) {
	switch name {
	case "length":
		if err := arity(pos, "length", args, 0); err != nil {
			return value.Value{}, err
		}
		return value.Int(int64(utf8.RuneCountInString(s))), nil
	case "index":
		if err := arity(pos, "index", args, 1); err != nil {
			return value.Value{}, err
		}
		if args[0].Kind() != value.KindStr {
			return value.Value{}, langerr.New(langerr.Type, pos, "index", "string .index expects a Str, got %s", args[0].TypeName())
		}
		target := args[0].AsStr()
		for i, r := range []rune(s) {
			if string(r) == target {
				return value.Int(int64(i)), nil
			}
		}
		return value.Int(-1), nil
	default:
		return value.Value{}, langerr.New(langerr.Name, pos, name, "string has no method '.%s'", name)
	}
}
