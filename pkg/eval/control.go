package eval

import "github.com/Frawstcrabs/IndividualProject/pkg/value"

// signalKind identifies a non-local exit in flight. break/continue/
// return are never implemented as Go panics (per SPEC_FULL.md §4.2
// NEW): they are an explicit extra return value threaded through every
// Visit method and evaluation helper, so a control-flow error (e.g.
// break escaping every loop) is just an ordinary *langerr.Error, not a
// recovered panic.
type signalKind int

const (
	sigNone signalKind = iota
	sigBreak
	sigContinue
	sigReturn
)

// signal carries a non-local exit and, for sigReturn, the value handed
// to the enclosing function call.
type signal struct {
	kind signalKind
	val  value.Value
}

// result is what every node evaluation produces: a value (meaningful in
// argument/value position), an in-flight signal (meaningful to the
// nearest enclosing loop or function frame), and an error. ast.Visitor
// methods are declared to return interface{} so the same Evaluator can
// satisfy ast.Visitor and be driven by node.Accept; they always box a
// result underneath, and every internal helper returns result directly
// so callers don't need a type assertion at each step.
type result struct {
	val value.Value
	sig signal
	err error
}
