package ast

// Visitor is implemented by anything that walks the node tree: the
// evaluator (pkg/eval) and the debug printer (pkg/visitors) both
// implement it by embedding BaseVisitor and overriding only the methods
// they care about, the same division of labour the teacher's AST
// visitors use.
type Visitor interface {
	VisitProgram(*Program) interface{}
	VisitText(*Text) interface{}
	VisitArg(*Arg) interface{}
	VisitCall(*Call) interface{}
	VisitPathRef(*PathRef) interface{}
	VisitPragma(*Pragma) interface{}
}
