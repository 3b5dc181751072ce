// Package ast defines the node tree produced by parsing a directive
// program: alternating literal text and brace-delimited directive
// invocations.
package ast

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Position is reused from participle's lexer package, the same position
// type the teacher embeds on every node (file/line/column/offset).
type Position = lexer.Position

// Node is anything that can appear in a Program, a directive's argument
// list, or a control-flow body.
type Node interface {
	node()
	Position() Position
	Accept(v Visitor) interface{}
}

// Program is the root of a parsed source file: a flat sequence of nodes
// evaluated in statement position.
type Program struct {
	Pos      Position
	Children []Node
}

func (n *Program) node()              {}
func (n *Program) Position() Position { return n.Pos }
func (n *Program) Accept(v Visitor) interface{} {
	return v.VisitProgram(n)
}

// Pragma is a standalone source directive that changes evaluator state
// rather than producing output, e.g. {#>oneline}. It is an ordinary node
// in statement position so its effect begins at the point it is
// evaluated, not retroactively over the whole source: a pragma inside a
// function body that isn't called until later only takes effect then.
type Pragma struct {
	Pos  Position
	Name string // "oneline" is the only pragma the language defines
}

func (n *Pragma) node()              {}
func (n *Pragma) Position() Position { return n.Pos }
func (n *Pragma) Accept(v Visitor) interface{} {
	return v.VisitPragma(n)
}

// EscapedNewline stands in for a source \n escape inside Text.Content.
// The parser never emits a plain '\n' byte for \n — incidental newlines
// (line breaks left in the source purely for formatting) and this
// escape both describe a newline in rendered output, but the
// {#>oneline} pragma collapses the former while preserving the latter,
// so the two have to stay distinguishable after parsing. U+2028 (LINE
// SEPARATOR) is vanishingly unlikely to appear in hand-written template
// source and is swapped back for a real '\n' at render time.
const EscapedNewline = ' '

// Text is a literal run of source text, with \\ already expanded and
// \n expanded to EscapedNewline rather than a literal newline byte.
type Text struct {
	Pos     Position
	Content string
}

func (n *Text) node()              {}
func (n *Text) Position() Position { return n.Pos }
func (n *Text) Accept(v Visitor) interface{} {
	return v.VisitText(n)
}

// Unescape swaps EscapedNewline back for a real '\n'. Statement-position
// rendering goes through pkg/eval's oneline writer instead, which needs
// the two kinds of newline kept apart; anywhere a Text's content becomes
// a Value directly (value position) there is no such filter downstream,
// so it must be unescaped here.
func Unescape(s string) string {
	if !strings.ContainsRune(s, EscapedNewline) {
		return s
	}
	return strings.ReplaceAll(s, string(EscapedNewline), "\n")
}

// Arg is one colon-separated argument of a Call: a node list mixing
// literal text and nested directives, exactly the way the body of a
// Program or control-flow block does.
type Arg struct {
	Pos      Position
	Children []Node
}

func (n *Arg) node()              {}
func (n *Arg) Position() Position { return n.Pos }
func (n *Arg) Accept(v Visitor) interface{} {
	return v.VisitArg(n)
}

// IsLiteralText reports whether this argument is a single literal text
// fragment, the case the evaluator passes through as a bare Str per
// "Argument typing" in the spec. An empty argument also counts, and
// yields "".
func (n *Arg) IsLiteralText() (string, bool) {
	if len(n.Children) == 1 {
		if t, ok := n.Children[0].(*Text); ok {
			return t.Content, true
		}
	}
	if len(n.Children) == 0 {
		return "", true
	}
	return "", false
}

// Call is a directive invocation closed with ";}": {head:arg1:arg2:...;}.
// Head is a full path (base + .field/[expr] segments) because built-in
// container methods are written path-qualified, e.g. {mylist.push:x;}
// has Head.Base == "mylist", Head.Segments == [.push]. A plain-name call
// (arithmetic, control flow, a user function) has Head.Segments == nil.
// A bare reference like {x} (no colon, closed with plain "}") is a
// PathRef instead, never a Call.
type Call struct {
	Pos  Position
	Head *Path
	Args []*Arg
}

func (n *Call) node()              {}
func (n *Call) Position() Position { return n.Pos }
func (n *Call) Accept(v Visitor) interface{} {
	return v.VisitCall(n)
}

// PathSegment is one step of a Path: either a literal .field access or
// an [index-expr] access, where the index expression is itself a node
// list (it may contain nested directives).
type PathSegment struct {
	Pos   Position
	Field string // set when this is a .field segment
	Index []Node // set when this is a [expr] segment (nil for .field)
}

// IsIndex reports whether this segment is an [expr] index rather than a
// .field access.
func (s *PathSegment) IsIndex() bool { return s.Field == "" }

// Path is a base identifier followed by zero or more .field/[expr]
// segments, as used by both bare references and {set:path:value}.
type Path struct {
	Pos      Position
	Base     string
	Segments []*PathSegment
}

func (p *Path) String() string {
	var b strings.Builder
	b.WriteString(p.Base)
	for _, s := range p.Segments {
		if s.IsIndex() {
			b.WriteString("[...]")
		} else {
			b.WriteByte('.')
			b.WriteString(s.Field)
		}
	}
	return b.String()
}

// PathRef is a bare directive reference: {x}, {m.field}, {list[0][1]}.
// It takes no colon-separated arguments.
type PathRef struct {
	Pos  Position
	Path *Path
}

func (n *PathRef) node()              {}
func (n *PathRef) Position() Position { return n.Pos }
func (n *PathRef) Accept(v Visitor) interface{} {
	return v.VisitPathRef(n)
}
