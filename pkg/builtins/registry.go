// Package builtins holds the fixed table of primitive directives that
// don't need special evaluation order (arithmetic, comparison, logic
// other than the short-circuiting and/or, collection construction and
// query, type conversion): every entry here operates on an already
// evaluated argument slice, grounded on the teacher's own flat
// map[string]bool-style RuntimeComponents registry, generalized here to
// map[string]Func so each name carries its implementation directly.
//
// Directives that must control *when* their operands are evaluated
// (set, func, if/while/for/foreach, break/continue/return, and/or) live
// in pkg/eval instead, since Func here only ever sees pre-evaluated
// values.
package builtins

import (
	"github.com/Frawstcrabs/IndividualProject/pkg/ast"
	"github.com/Frawstcrabs/IndividualProject/pkg/value"
)

// Func is one built-in directive's implementation: given the call's
// source position (for diagnostics) and its already-evaluated
// arguments, it produces a value or an error.
type Func func(pos ast.Position, args []value.Value) (value.Value, error)

var registry = map[string]Func{
	"add":  builtinAdd,
	"sub":  builtinSub,
	"mul":  builtinMul,
	"div":  builtinDiv,
	"fdiv": builtinFdiv,
	"mod":  builtinMod,
	"neg":  builtinNeg,

	"eq":  builtinEq,
	"neq": builtinNeq,
	"lt":  builtinLt,
	"le":  builtinLe,
	"gt":  builtinGt,
	"ge":  builtinGe,

	"not": builtinNot,

	"list": builtinList,
	"map":  builtinMap,

	"str":   builtinStr,
	"int":   builtinInt,
	"float": builtinFloat,
	"bool":  builtinBool,
	"type":  builtinType,

	"tojson":   builtinToJSON,
	"fromjson": builtinFromJSON,
}

// Lookup returns the built-in registered under name, if any.
func Lookup(name string) (Func, bool) {
	fn, ok := registry[name]
	return fn, ok
}

// Names lists every registered built-in name, for "did you mean"
// suggestions on an unknown directive.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
