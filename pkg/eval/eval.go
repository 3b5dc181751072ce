// Package eval implements the tree-walking evaluator (§4.2 of
// SPEC_FULL.md): it drives pkg/ast's Visitor over a parsed Program,
// producing interleaved output text and, for directives used in value
// position, a pkg/value.Value. Control flow (break/continue/return) is
// modeled as an explicit signal threaded alongside every result rather
// than a Go panic, and recursion depth is tracked by an explicit
// counter rather than relying on the host stack.
package eval

import (
	"fmt"
	"io"
	"strings"

	"github.com/Frawstcrabs/IndividualProject/pkg/ast"
	"github.com/Frawstcrabs/IndividualProject/pkg/builtins"
	"github.com/Frawstcrabs/IndividualProject/pkg/env"
	"github.com/Frawstcrabs/IndividualProject/internal/suggest"
	"github.com/Frawstcrabs/IndividualProject/pkg/langerr"
	"github.com/Frawstcrabs/IndividualProject/pkg/value"
)

// DefaultMaxDepth bounds function-call recursion (SPEC_FULL.md §4.2
// NEW) so a runaway recursive program fails with a Recursion error
// instead of exhausting the host goroutine stack.
const DefaultMaxDepth = 4096

// Evaluator walks a parsed Program. It satisfies ast.Visitor; Visit*
// methods always box a result (see control.go) into the interface{}
// return the Visitor contract requires.
type Evaluator struct {
	global   *env.Frame
	frame    *env.Frame
	out      *onelineWriter
	depth    int
	maxDepth int
}

var _ ast.Visitor = (*Evaluator)(nil)

// New creates an Evaluator writing rendered output to out.
func New(out io.Writer) *Evaluator {
	g := env.New()
	return &Evaluator{
		global:   g,
		frame:    g,
		out:      newOnelineWriter(out),
		maxDepth: DefaultMaxDepth,
	}
}

// Global exposes the root frame so a host can bind `args` (or any other
// ambient name) before calling Run.
func (e *Evaluator) Global() *env.Frame { return e.global }

// Run evaluates prog's top-level statements. A break/continue/return
// that escapes every enclosing loop and function is reported as a
// *langerr.Error, not silently dropped.
func (e *Evaluator) Run(prog *ast.Program) error {
	e.frame = e.global
	r := e.evalBody(prog.Children)
	if r.err != nil {
		return r.err
	}
	switch r.sig.kind {
	case sigBreak:
		return langerr.New(langerr.ControlFlow, prog.Pos, "break", "break outside of any loop")
	case sigContinue:
		return langerr.New(langerr.ControlFlow, prog.Pos, "continue", "continue outside of any loop")
	case sigReturn:
		return langerr.New(langerr.ControlFlow, prog.Pos, "return", "return outside of any function")
	}
	return nil
}

// evalNode dispatches through the Visitor interface and unboxes the
// result every Visit method produces.
func (e *Evaluator) evalNode(n ast.Node) result {
	if raw := n.Accept(e); raw != nil {
		if r, ok := raw.(result); ok {
			return r
		}
	}
	return result{}
}

// evalBody evaluates nodes as a statement sequence: Text and any
// renderable directive value is written to output, in source order,
// until a signal fires or an error occurs.
func (e *Evaluator) evalBody(nodes []ast.Node) result {
	for _, n := range nodes {
		r := e.evalNode(n)
		if r.err != nil {
			return r
		}
		if r.sig.kind != sigNone {
			return r
		}
		if text, ok := Render(r.val); ok {
			if err := e.out.WriteString(text); err != nil {
				return result{err: err}
			}
		}
	}
	return result{}
}

// evalBodyArg runs an Arg's node list as a statement sequence: used for
// function bodies and every control-flow body/branch, which are
// syntactically Args but evaluated in statement, not value, position
// (SPEC_FULL.md's function call protocol is explicit that a function
// body's "output fragments go to the caller's output sink").
func (e *Evaluator) evalBodyArg(arg *ast.Arg) result {
	return e.evalBody(arg.Children)
}

// evalArg evaluates an Arg in value position.
func (e *Evaluator) evalArg(arg *ast.Arg) (value.Value, error) {
	return e.evalNodeList(arg.Children, arg.Pos)
}

// evalNodeList evaluates a bare node list — an Arg's Children or a
// PathSegment's [expr] content — in value position: a single literal
// text fragment (or no children) yields Str; a single nested directive
// yields its native value unchanged (this is what lets a non-Str value
// such as a List or a Func pass through an argument intact); anything
// else concatenates the textual rendering of each piece, the natural
// generalization of statement-position rendering to in-line
// interpolation such as "hello {name}".
func (e *Evaluator) evalNodeList(nodes []ast.Node, pos ast.Position) (value.Value, error) {
	if len(nodes) == 0 {
		return value.Str(""), nil
	}
	if len(nodes) == 1 {
		if t, ok := nodes[0].(*ast.Text); ok {
			return value.Str(ast.Unescape(t.Content)), nil
		}
		r := e.evalNode(nodes[0])
		if r.err != nil {
			return value.Value{}, r.err
		}
		if r.sig.kind != sigNone {
			return value.Value{}, langerr.New(langerr.ControlFlow, nodes[0].Position(), "", "break/continue/return cannot appear in value position")
		}
		return r.val, nil
	}
	var b strings.Builder
	for _, n := range nodes {
		if t, ok := n.(*ast.Text); ok {
			b.WriteString(ast.Unescape(t.Content))
			continue
		}
		r := e.evalNode(n)
		if r.err != nil {
			return value.Value{}, r.err
		}
		if r.sig.kind != sigNone {
			return value.Value{}, langerr.New(langerr.ControlFlow, n.Position(), "", "break/continue/return cannot appear in value position")
		}
		if text, ok := Render(r.val); ok {
			b.WriteString(text)
		}
	}
	return value.Str(b.String()), nil
}

func (e *Evaluator) VisitProgram(n *ast.Program) interface{} {
	return e.evalBody(n.Children)
}

func (e *Evaluator) VisitText(n *ast.Text) interface{} {
	if err := e.out.WriteString(n.Content); err != nil {
		return result{err: err}
	}
	return result{}
}

// VisitArg exists only to satisfy ast.Visitor; eval never reaches an
// Arg through generic Accept dispatch (VisitCall always calls evalArg
// or evalBodyArg directly, since which one applies depends on which
// built-in or control-flow directive the Arg belongs to).
func (e *Evaluator) VisitArg(n *ast.Arg) interface{} {
	v, err := e.evalArg(n)
	return result{val: v, err: err}
}

func (e *Evaluator) VisitPathRef(n *ast.PathRef) interface{} {
	v, err := e.readPath(n.Path)
	return result{val: v, err: err}
}

func (e *Evaluator) VisitPragma(n *ast.Pragma) interface{} {
	if n.Name == "oneline" {
		e.out.Enable()
	}
	return result{}
}

func (e *Evaluator) VisitCall(n *ast.Call) interface{} {
	return e.dispatchCall(n)
}

func (e *Evaluator) dispatchCall(n *ast.Call) result {
	head := n.Head
	if len(head.Segments) > 0 {
		return e.evalMethodCall(n)
	}
	switch head.Base {
	case "set":
		return e.evalSet(n)
	case "func":
		return e.evalFuncDef(n)
	case "if":
		return e.evalIf(n)
	case "while":
		return e.evalWhile(n)
	case "for":
		return e.evalFor(n)
	case "foreach":
		return e.evalForeach(n)
	case "break":
		if len(n.Args) != 0 {
			return result{err: langerr.New(langerr.Arity, n.Pos, "break", "break takes no arguments")}
		}
		return result{sig: signal{kind: sigBreak}}
	case "continue":
		if len(n.Args) != 0 {
			return result{err: langerr.New(langerr.Arity, n.Pos, "continue", "continue takes no arguments")}
		}
		return result{sig: signal{kind: sigContinue}}
	case "return":
		return e.evalReturn(n)
	case "and":
		return e.evalAnd(n)
	case "or":
		return e.evalOr(n)
	}

	if fnVal, ok := e.frame.Lookup(head.Base); ok && fnVal.Kind() == value.KindFunc {
		return e.callFunc(n, fnVal.AsFunc())
	}
	if fn, ok := builtins.Lookup(head.Base); ok {
		return e.evalBuiltinCall(n, fn)
	}
	candidates := append(append([]string{}, e.frame.Names()...), builtins.Names()...)
	hint := suggest.Hint(head.Base, candidates)
	return result{err: langerr.New(langerr.Name, n.Pos, head.Base, "unknown directive '%s'%s", head.Base, hint)}
}

func (e *Evaluator) evalBuiltinCall(n *ast.Call, fn builtins.Func) result {
	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.evalArg(a)
		if err != nil {
			return result{err: err}
		}
		args[i] = v
	}
	v, err := fn(n.Pos, args)
	if err != nil {
		return result{err: wrapBuiltinErr(n.Head.Base, n.Pos, err)}
	}
	return result{val: v}
}

func wrapBuiltinErr(head string, pos ast.Position, err error) error {
	if le, ok := err.(*langerr.Error); ok {
		return le
	}
	return langerr.Wrap(langerr.ValueErr, pos, head, err, "%s", err.Error())
}

// evalMethodCall handles a Call whose head carries path segments, e.g.
// {mylist.push:x;}: the last segment names the method, everything
// before it resolves (read-only) to the receiver, and the method
// mutates the receiver's underlying container directly — containers
// are shared-mutable, so there is nothing to write back through the
// path afterwards.
func (e *Evaluator) evalMethodCall(n *ast.Call) result {
	head := n.Head
	last := head.Segments[len(head.Segments)-1]
	if last.IsIndex() {
		return result{err: langerr.New(langerr.Parse, n.Pos, head.String(), "a directive's head must end in a .method name, not an index")}
	}
	recvPath := &ast.Path{Pos: head.Pos, Base: head.Base, Segments: head.Segments[:len(head.Segments)-1]}
	recv, err := e.readPath(recvPath)
	if err != nil {
		return result{err: err}
	}
	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.evalArg(a)
		if err != nil {
			return result{err: err}
		}
		args[i] = v
	}
	v, err := builtins.Method(last.Field, n.Pos, recv, args)
	if err != nil {
		return result{err: wrapBuiltinErr(fmt.Sprintf("%s.%s", head.Base, last.Field), n.Pos, err)}
	}
	return result{val: v}
}

// soleRef returns arg's only child as a *ast.PathRef, the shape the
// parser builds for set's path argument (see parser.go).
func soleRef(arg *ast.Arg) (*ast.PathRef, bool) {
	if len(arg.Children) != 1 {
		return nil, false
	}
	ref, ok := arg.Children[0].(*ast.PathRef)
	return ref, ok
}

func (e *Evaluator) evalSet(n *ast.Call) result {
	if len(n.Args) != 2 {
		return result{err: langerr.New(langerr.Arity, n.Pos, "set", "set expects exactly 2 arguments (path, value), got %d", len(n.Args))}
	}
	ref, ok := soleRef(n.Args[0])
	if !ok {
		return result{err: langerr.New(langerr.Parse, n.Args[0].Pos, "set", "set's first argument must be a path")}
	}
	val, err := e.evalArg(n.Args[1])
	if err != nil {
		return result{err: err}
	}
	pl, err := e.resolvePath(ref.Path, true)
	if err != nil {
		return result{err: err}
	}
	if !pl.set(val) {
		return result{err: langerr.New(langerr.Index, n.Pos, "set", "assignment target '%s' is out of range", ref.Path.String())}
	}
	return result{val: value.Nil()}
}

func (e *Evaluator) evalFuncDef(n *ast.Call) result {
	if len(n.Args) != 2 {
		return result{err: langerr.New(langerr.Arity, n.Pos, "func", "func expects exactly 2 arguments (signature, body), got %d", len(n.Args))}
	}
	sigArg := n.Args[0]
	if len(sigArg.Children) != 1 {
		return result{err: langerr.New(langerr.Parse, sigArg.Pos, "func", "func's first argument must be a single {name:params...;} signature")}
	}
	sig, ok := sigArg.Children[0].(*ast.Call)
	if !ok {
		return result{err: langerr.New(langerr.Parse, sigArg.Pos, "func", "func's first argument must be a nested directive")}
	}
	params := make([]string, len(sig.Args))
	for i, p := range sig.Args {
		text, ok := p.IsLiteralText()
		if !ok {
			return result{err: langerr.New(langerr.Parse, p.Pos, "func", "parameter name must be a literal identifier")}
		}
		params[i] = text
	}
	fn := value.NewFunc(sig.Head.Base, params, n.Args[1], e.frame)
	e.frame.Declare(sig.Head.Base, value.FromFunc(fn))
	return result{val: value.Nil()}
}

func (e *Evaluator) callFunc(n *ast.Call, fn *value.Func) result {
	if len(n.Args) != len(fn.Params) {
		return result{err: langerr.New(langerr.Arity, n.Pos, fn.Name, "%s expects %d argument(s), got %d", fn.Name, len(fn.Params), len(n.Args))}
	}
	argVals := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.evalArg(a)
		if err != nil {
			return result{err: err}
		}
		argVals[i] = v
	}
	capture, _ := fn.Env.(*env.Frame)
	callFrame := capture.Child()
	for i, p := range fn.Params {
		callFrame.Declare(p, argVals[i])
	}

	e.depth++
	if e.depth > e.maxDepth {
		e.depth--
		return result{err: langerr.New(langerr.Recursion, n.Pos, fn.Name, "maximum call depth (%d) exceeded", e.maxDepth)}
	}

	bodyArg, _ := fn.Body.(*ast.Arg)
	prevFrame := e.frame
	e.frame = callFrame
	bodyRes := e.evalBodyArg(bodyArg)
	e.frame = prevFrame
	e.depth--

	if bodyRes.err != nil {
		return result{err: bodyRes.err}
	}
	switch bodyRes.sig.kind {
	case sigReturn:
		return result{val: bodyRes.sig.val}
	case sigBreak:
		return result{err: langerr.New(langerr.ControlFlow, n.Pos, "break", "break outside of any loop")}
	case sigContinue:
		return result{err: langerr.New(langerr.ControlFlow, n.Pos, "continue", "continue outside of any loop")}
	}
	return result{val: value.Nil()}
}

func (e *Evaluator) evalIf(n *ast.Call) result {
	if len(n.Args) != 3 {
		return result{err: langerr.New(langerr.Arity, n.Pos, "if", "if expects exactly 3 arguments (cond, then, else), got %d", len(n.Args))}
	}
	cond, err := e.evalArg(n.Args[0])
	if err != nil {
		return result{err: err}
	}
	if cond.Truthy() {
		return e.evalBodyArg(n.Args[1])
	}
	return e.evalBodyArg(n.Args[2])
}

func (e *Evaluator) evalWhile(n *ast.Call) result {
	if len(n.Args) != 2 {
		return result{err: langerr.New(langerr.Arity, n.Pos, "while", "while expects exactly 2 arguments (cond, body), got %d", len(n.Args))}
	}
	for {
		cond, err := e.evalArg(n.Args[0])
		if err != nil {
			return result{err: err}
		}
		if !cond.Truthy() {
			return result{}
		}
		r := e.evalBodyArg(n.Args[1])
		if r.err != nil {
			return r
		}
		switch r.sig.kind {
		case sigBreak:
			return result{}
		case sigReturn:
			return r
		}
	}
}

func (e *Evaluator) argIdent(arg *ast.Arg, head string) (string, error) {
	text, ok := arg.IsLiteralText()
	if !ok || text == "" {
		return "", langerr.New(langerr.Parse, arg.Pos, head, "expected a plain identifier")
	}
	return text, nil
}

func (e *Evaluator) argInt(arg *ast.Arg, head, role string) (int64, error) {
	v, err := e.evalArg(arg)
	if err != nil {
		return 0, err
	}
	num, ok := value.CoerceNumber(v)
	if !ok {
		return 0, langerr.New(langerr.Type, arg.Pos, head, "%s must be a number", role)
	}
	if num.Kind() == value.KindFloat {
		return int64(num.AsFloat()), nil
	}
	return num.AsInt(), nil
}

func (e *Evaluator) evalFor(n *ast.Call) result {
	var varName string
	var start, end, step int64 = 0, 0, 1
	var bodyArg *ast.Arg

	switch len(n.Args) {
	case 3:
		name, err := e.argIdent(n.Args[0], "for")
		if err != nil {
			return result{err: err}
		}
		varName = name
		v, err := e.argInt(n.Args[1], "for", "end")
		if err != nil {
			return result{err: err}
		}
		end = v
		bodyArg = n.Args[2]
	case 4:
		name, err := e.argIdent(n.Args[0], "for")
		if err != nil {
			return result{err: err}
		}
		varName = name
		if start, err = e.argInt(n.Args[1], "for", "start"); err != nil {
			return result{err: err}
		}
		if end, err = e.argInt(n.Args[2], "for", "end"); err != nil {
			return result{err: err}
		}
		bodyArg = n.Args[3]
	case 5:
		name, err := e.argIdent(n.Args[0], "for")
		if err != nil {
			return result{err: err}
		}
		varName = name
		if start, err = e.argInt(n.Args[1], "for", "start"); err != nil {
			return result{err: err}
		}
		if end, err = e.argInt(n.Args[2], "for", "end"); err != nil {
			return result{err: err}
		}
		if step, err = e.argInt(n.Args[3], "for", "step"); err != nil {
			return result{err: err}
		}
		bodyArg = n.Args[4]
	default:
		return result{err: langerr.New(langerr.Arity, n.Pos, "for", "for expects 3, 4, or 5 arguments, got %d", len(n.Args))}
	}
	if step == 0 {
		return result{err: langerr.New(langerr.ValueErr, n.Pos, "for", "for's step must not be zero")}
	}

	for i := start; (step > 0 && i < end) || (step < 0 && i > end); i += step {
		e.frame.Declare(varName, value.Int(i))
		r := e.evalBodyArg(bodyArg)
		if r.err != nil {
			return r
		}
		switch r.sig.kind {
		case sigBreak:
			return result{}
		case sigReturn:
			return r
		}
	}
	return result{}
}

func (e *Evaluator) evalForeach(n *ast.Call) result {
	if len(n.Args) != 3 {
		return result{err: langerr.New(langerr.Arity, n.Pos, "foreach", "foreach expects exactly 3 arguments (var, collection, body), got %d", len(n.Args))}
	}
	varName, err := e.argIdent(n.Args[0], "foreach")
	if err != nil {
		return result{err: err}
	}
	coll, err := e.evalArg(n.Args[1])
	if err != nil {
		return result{err: err}
	}
	var items []value.Value
	switch coll.Kind() {
	case value.KindList:
		items = coll.AsList().Items()
	case value.KindMap:
		items = coll.AsMap().Values()
	default:
		return result{err: langerr.New(langerr.Type, n.Args[1].Pos, "foreach", "foreach requires a List or Map, got %s", coll.TypeName())}
	}
	for _, item := range items {
		e.frame.Declare(varName, item)
		r := e.evalBodyArg(n.Args[2])
		if r.err != nil {
			return r
		}
		switch r.sig.kind {
		case sigBreak:
			return result{}
		case sigReturn:
			return r
		}
	}
	return result{}
}

func (e *Evaluator) evalReturn(n *ast.Call) result {
	if len(n.Args) > 1 {
		return result{err: langerr.New(langerr.Arity, n.Pos, "return", "return takes zero or one argument, got %d", len(n.Args))}
	}
	val := value.Nil()
	if len(n.Args) == 1 {
		v, err := e.evalArg(n.Args[0])
		if err != nil {
			return result{err: err}
		}
		val = v
	}
	return result{sig: signal{kind: sigReturn, val: val}}
}

// evalAnd/evalOr are handled here rather than in pkg/builtins because
// they must short-circuit: the second operand's Arg is never evaluated
// once the first determines the result, so they cannot be ordinary
// builtins operating on a pre-evaluated argument slice.
// and/or always yield a Bool of the short-circuit outcome, never the
// operand itself, so that {and:true:{x};} behaves like {bool:{x};} for
// any x — evaluation of the operands still stops at the first one that
// decides the result.
func (e *Evaluator) evalAnd(n *ast.Call) result {
	if len(n.Args) < 2 {
		return result{err: langerr.New(langerr.Arity, n.Pos, "and", "and expects at least 2 arguments, got %d", len(n.Args))}
	}
	for _, a := range n.Args {
		v, err := e.evalArg(a)
		if err != nil {
			return result{err: err}
		}
		if !v.Truthy() {
			return result{val: value.Bool(false)}
		}
	}
	return result{val: value.Bool(true)}
}

func (e *Evaluator) evalOr(n *ast.Call) result {
	if len(n.Args) < 2 {
		return result{err: langerr.New(langerr.Arity, n.Pos, "or", "or expects at least 2 arguments, got %d", len(n.Args))}
	}
	for _, a := range n.Args {
		v, err := e.evalArg(a)
		if err != nil {
			return result{err: err}
		}
		if v.Truthy() {
			return result{val: value.Bool(true)}
		}
	}
	return result{val: value.Bool(false)}
}
