package parser

import (
	"github.com/Frawstcrabs/IndividualProject/pkg/ast"
	"github.com/Frawstcrabs/IndividualProject/pkg/langerr"
)

// Validate walks a parsed Program checking shapes that are structural
// rather than semantic: it never resolves names, infers a value's type,
// or rejects a program because a built-in would fail at runtime (that
// static checking is explicitly out of scope, see SPEC_FULL.md's
// Non-goals) — it only catches malformed syntax that parseNodeList's
// generic node-list walk can't see on its own, grounded on the
// teacher's own post-parse Validate(file *ast.File) pass.
func Validate(prog *ast.Program) error {
	v := &validator{}
	prog.Accept(v)
	return v.err
}

type validator struct {
	ast.BaseVisitor
	err error
}

func (v *validator) VisitCall(n *ast.Call) interface{} {
	if v.err != nil {
		return nil
	}
	if n.Head.Base == "func" && len(n.Head.Segments) == 0 {
		if err := validateFuncShape(n); err != nil {
			v.err = err
			return nil
		}
	}
	return v.BaseVisitor.VisitCall(n)
}

// validateFuncShape checks {func:{name:p1:p2:...;}:body;}: exactly two
// arguments, the first of which is a single nested Call (the signature)
// whose own head is a plain name and whose arguments are each a single
// literal identifier (the parameter name).
func validateFuncShape(n *ast.Call) error {
	if len(n.Args) != 2 {
		return langerr.New(langerr.Parse, n.Pos, "func",
			"func expects exactly 2 arguments (signature and body), got %d", len(n.Args))
	}
	sigArg := n.Args[0]
	if len(sigArg.Children) != 1 {
		return langerr.New(langerr.Parse, sigArg.Pos, "func",
			"func's first argument must be a single {name:params...;} signature")
	}
	sig, ok := sigArg.Children[0].(*ast.Call)
	if !ok {
		return langerr.New(langerr.Parse, sigArg.Pos, "func",
			"func's first argument must be a nested directive {name:params...;}, not literal text")
	}
	if len(sig.Head.Segments) != 0 {
		return langerr.New(langerr.Parse, sig.Pos, "func",
			"function name must be a plain identifier, not a path")
	}
	for _, param := range sig.Args {
		if _, ok := param.IsLiteralText(); !ok {
			return langerr.New(langerr.Parse, param.Pos, "func",
				"parameter name must be a literal identifier")
		}
	}
	return nil
}
