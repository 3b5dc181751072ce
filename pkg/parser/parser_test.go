package parser

import (
	"testing"

	"github.com/Frawstcrabs/IndividualProject/pkg/ast"
)

func TestParseLiteralText(t *testing.T) {
	prog, err := Parse("<test>", "hello world")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(prog.Children) != 1 {
		t.Fatalf("len(Children) = %d, want 1", len(prog.Children))
	}
	text, ok := prog.Children[0].(*ast.Text)
	if !ok || text.Content != "hello world" {
		t.Errorf("Children[0] = %#v, want Text{hello world}", prog.Children[0])
	}
}

func TestParseEscapes(t *testing.T) {
	prog, err := Parse("<test>", `a\nb\\c`)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	text := prog.Children[0].(*ast.Text)
	want := "a" + string(ast.EscapedNewline) + "b\\c"
	if text.Content != want {
		t.Errorf("Content = %q, want %q", text.Content, want)
	}
	if ast.Unescape(text.Content) != "a\nb\\c" {
		t.Errorf("Unescape(Content) = %q, want %q", ast.Unescape(text.Content), "a\nb\\c")
	}
}

func TestParseZeroArgCall(t *testing.T) {
	prog, err := Parse("<test>", "{break;}")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	call, ok := prog.Children[0].(*ast.Call)
	if !ok {
		t.Fatalf("Children[0] = %#v, want *ast.Call", prog.Children[0])
	}
	if call.Head.Base != "break" || len(call.Args) != 0 {
		t.Errorf("call = %+v, want base break with zero args", call)
	}
}

func TestParseCallWithArgs(t *testing.T) {
	prog, err := Parse("<test>", "{add:2:3;}")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	call := prog.Children[0].(*ast.Call)
	if call.Head.Base != "add" || len(call.Args) != 2 {
		t.Fatalf("call = %+v, want base add with 2 args", call)
	}
	a0, ok := call.Args[0].IsLiteralText()
	if !ok || a0 != "2" {
		t.Errorf("Args[0] = %q, %v, want \"2\", true", a0, ok)
	}
	a1, ok := call.Args[1].IsLiteralText()
	if !ok || a1 != "3" {
		t.Errorf("Args[1] = %q, %v, want \"3\", true", a1, ok)
	}
}

func TestParsePathRef(t *testing.T) {
	prog, err := Parse("<test>", "{x}")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	ref, ok := prog.Children[0].(*ast.PathRef)
	if !ok {
		t.Fatalf("Children[0] = %#v, want *ast.PathRef", prog.Children[0])
	}
	if ref.Path.Base != "x" || len(ref.Path.Segments) != 0 {
		t.Errorf("ref.Path = %+v, want bare base x", ref.Path)
	}
}

func TestParsePathSegments(t *testing.T) {
	prog, err := Parse("<test>", "{m.data[0].length}")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	ref := prog.Children[0].(*ast.PathRef)
	segs := ref.Path.Segments
	if len(segs) != 3 {
		t.Fatalf("len(Segments) = %d, want 3", len(segs))
	}
	if segs[0].Field != "data" {
		t.Errorf("Segments[0].Field = %q, want \"data\"", segs[0].Field)
	}
	if segs[1].Index == nil {
		t.Errorf("Segments[1] should be an index segment")
	}
	if segs[2].Field != "length" {
		t.Errorf("Segments[2].Field = %q, want \"length\"", segs[2].Field)
	}
}

func TestParseCommentIsSkipped(t *testing.T) {
	prog, err := Parse("<test>", "{! this is\na comment !}remain")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(prog.Children) != 1 {
		t.Fatalf("len(Children) = %d, want 1", len(prog.Children))
	}
	text := prog.Children[0].(*ast.Text)
	if text.Content != "remain" {
		t.Errorf("Content = %q, want \"remain\"", text.Content)
	}
}

func TestParseOnelinePragma(t *testing.T) {
	prog, err := Parse("<test>", "{#>oneline}x")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(prog.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(prog.Children))
	}
	pragma, ok := prog.Children[0].(*ast.Pragma)
	if !ok || pragma.Name != "oneline" {
		t.Errorf("Children[0] = %#v, want Pragma{oneline}", prog.Children[0])
	}
}

func TestParseNestedDirectiveInArg(t *testing.T) {
	prog, err := Parse("<test>", "{add:{mul:2:3;}:1;}")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	call := prog.Children[0].(*ast.Call)
	if len(call.Args) != 2 {
		t.Fatalf("len(Args) = %d, want 2", len(call.Args))
	}
	if len(call.Args[0].Children) != 1 {
		t.Fatalf("len(Args[0].Children) = %d, want 1", len(call.Args[0].Children))
	}
	inner, ok := call.Args[0].Children[0].(*ast.Call)
	if !ok || inner.Head.Base != "mul" {
		t.Errorf("Args[0].Children[0] = %#v, want Call{mul}", call.Args[0].Children[0])
	}
}

func TestParseSetFirstArgIsPath(t *testing.T) {
	prog, err := Parse("<test>", "{set:rotor[{i}]:5;}")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	call := prog.Children[0].(*ast.Call)
	if call.Head.Base != "set" {
		t.Fatalf("call.Head.Base = %q, want \"set\"", call.Head.Base)
	}
	if len(call.Args) != 2 {
		t.Fatalf("len(Args) = %d, want 2", len(call.Args))
	}
	ref, ok := call.Args[0].Children[0].(*ast.PathRef)
	if !ok {
		t.Fatalf("Args[0].Children[0] = %#v, want *ast.PathRef", call.Args[0].Children[0])
	}
	if ref.Path.Base != "rotor" || len(ref.Path.Segments) != 1 {
		t.Errorf("ref.Path = %+v, want base rotor with 1 index segment", ref.Path)
	}
}

func TestParseMixedTextAndDirectiveInArg(t *testing.T) {
	prog, err := Parse("<test>", "{foo:hello {x} world;}")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	call := prog.Children[0].(*ast.Call)
	if len(call.Args) != 1 {
		t.Fatalf("len(Args) = %d, want 1", len(call.Args))
	}
	children := call.Args[0].Children
	if len(children) != 3 {
		t.Fatalf("len(children) = %d, want 3, got %#v", len(children), children)
	}
}

func TestParseUnterminatedDirectiveErrors(t *testing.T) {
	if _, err := Parse("<test>", "{add:1:2"); err == nil {
		t.Error("expected an error for an unterminated directive")
	}
}

func TestParseUnterminatedCommentErrors(t *testing.T) {
	if _, err := Parse("<test>", "{! never closed"); err == nil {
		t.Error("expected an error for an unterminated comment")
	}
}

func TestParseStrayClosingDelimiterErrors(t *testing.T) {
	if _, err := Parse("<test>", "foo;}bar"); err == nil {
		t.Error("expected an error for a stray ';}' at top level")
	}
}

func TestParseLoneSemicolonIsText(t *testing.T) {
	prog, err := Parse("<test>", "a;b")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	text := prog.Children[0].(*ast.Text)
	if text.Content != "a;b" {
		t.Errorf("Content = %q, want \"a;b\"", text.Content)
	}
}
