package eval

import (
	"io"
	"strings"

	"github.com/Frawstcrabs/IndividualProject/pkg/ast"
)

// onelineWriter decorates the host's output sink and implements the
// {#>oneline} pragma as a post-filter entirely independent of
// evaluator/control-flow logic: the evaluator always
// writes through this writer, and Enable flips it into collapsing mode
// permanently, matching the pragma's "toggles for the whole remaining
// program" wording without needing to special-case every write site.
//
// Every literal text fragment reaches this writer through its own
// WriteString call (evalBody/VisitText render one node's output at a
// time), so "whitespace between directive emissions" and "whitespace at
// the start of a fragment" are the same thing from here: while active,
// each call strips its own leading run of space/tab/carriage-return/
// incidental-newline, independent of what any earlier call wrote —
// a whitespace-only fragment (the usual shape of formatting left
// between two directives) is thus stripped to nothing in its entirety,
// while whitespace in the interior of a fragment (e.g. the space in
// "hello world") is left alone. An explicit \n escape is preserved
// regardless: the parser expands \n to ast.EscapedNewline rather than a
// literal newline byte specifically so this filter can tell the two
// apart (a plain source line break is incidental and collapses; an
// author's \n is not and survives, rendered as a real newline).
type onelineWriter struct {
	dst    io.Writer
	active bool
}

func newOnelineWriter(dst io.Writer) *onelineWriter {
	return &onelineWriter{dst: dst}
}

// Enable switches the writer into oneline mode. Irreversible: the
// pragma has no "off" form.
func (w *onelineWriter) Enable() {
	w.active = true
}

func (w *onelineWriter) WriteString(s string) error {
	if w.active {
		i := 0
		for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\r' || s[i] == '\n') {
			i++
		}
		s = s[i:]
	}
	if s == "" {
		return nil
	}
	if strings.ContainsRune(s, ast.EscapedNewline) {
		s = strings.ReplaceAll(s, string(ast.EscapedNewline), "\n")
	}
	_, err := io.WriteString(w.dst, s)
	return err
}
