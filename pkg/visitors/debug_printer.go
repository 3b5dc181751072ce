// Package visitors holds ast.Visitor implementations that exist purely
// to inspect a parsed program rather than evaluate it.
package visitors

import (
	"fmt"
	"strings"

	"github.com/Frawstcrabs/IndividualProject/pkg/ast"
)

// DebugPrinter renders a parsed Program as an indented tree, the shape
// printed by the interpreter's --dump-ast flag. It embeds BaseVisitor
// and overrides every node kind, since there is no default traversal
// that also produces useful output.
type DebugPrinter struct {
	ast.BaseVisitor

	output strings.Builder
	indent int
}

// NewDebugPrinter creates a new debug printer.
func NewDebugPrinter() *DebugPrinter {
	return &DebugPrinter{}
}

// String returns the formatted output collected so far.
func (d *DebugPrinter) String() string {
	return d.output.String()
}

func (d *DebugPrinter) line(format string, args ...interface{}) {
	d.output.WriteString(strings.Repeat("  ", d.indent))
	fmt.Fprintf(&d.output, format, args...)
	d.output.WriteByte('\n')
}

func (d *DebugPrinter) visitAll(nodes []ast.Node) {
	d.indent++
	for _, n := range nodes {
		n.Accept(d)
	}
	d.indent--
}

// VisitProgram prints the top-level node list.
func (d *DebugPrinter) VisitProgram(n *ast.Program) interface{} {
	d.line("Program")
	d.visitAll(n.Children)
	return nil
}

// VisitText prints a literal text fragment.
func (d *DebugPrinter) VisitText(n *ast.Text) interface{} {
	d.line("Text %q", n.Content)
	return nil
}

// VisitArg prints an argument's node list. Reached directly only when
// something walks an *ast.Arg outside of a Call's Args (the evaluator
// never does; VisitCall below inlines each arg instead).
func (d *DebugPrinter) VisitArg(n *ast.Arg) interface{} {
	d.line("Arg")
	d.visitAll(n.Children)
	return nil
}

// VisitPathRef prints a bare reference, e.g. {m.field}.
func (d *DebugPrinter) VisitPathRef(n *ast.PathRef) interface{} {
	d.line("PathRef %s", n.Path.String())
	return nil
}

// VisitPragma prints a standalone pragma directive.
func (d *DebugPrinter) VisitPragma(n *ast.Pragma) interface{} {
	d.line("Pragma #>%s", n.Name)
	return nil
}

// VisitCall prints a directive invocation and its colon-separated
// arguments, each as an indented "Arg[i]" block.
func (d *DebugPrinter) VisitCall(n *ast.Call) interface{} {
	d.line("Call %s (%d arg(s))", n.Head.String(), len(n.Args))
	d.indent++
	for i, a := range n.Args {
		d.line("Arg[%d]", i)
		d.visitAll(a.Children)
	}
	d.indent--
	return nil
}
