package ast

// BaseVisitor provides default traversal for every node kind. Embedders
// override only the methods whose node they care about; by default
// BaseVisitor walks the whole tree without doing anything.
type BaseVisitor struct{}

var _ Visitor = (*BaseVisitor)(nil)

func (v *BaseVisitor) VisitProgram(n *Program) interface{} {
	for _, c := range n.Children {
		c.Accept(v)
	}
	return nil
}

func (v *BaseVisitor) VisitText(n *Text) interface{} {
	return nil
}

func (v *BaseVisitor) VisitArg(n *Arg) interface{} {
	for _, c := range n.Children {
		c.Accept(v)
	}
	return nil
}

func (v *BaseVisitor) VisitCall(n *Call) interface{} {
	for _, a := range n.Args {
		a.Accept(v)
	}
	return nil
}

func (v *BaseVisitor) VisitPathRef(n *PathRef) interface{} {
	for _, seg := range n.Path.Segments {
		for _, c := range seg.Index {
			c.Accept(v)
		}
	}
	return nil
}

func (v *BaseVisitor) VisitPragma(n *Pragma) interface{} {
	return nil
}
