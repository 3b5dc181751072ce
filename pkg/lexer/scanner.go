// Package lexer provides the rune-level scanner that pkg/parser drives to
// tokenize directive source. It mirrors the teacher's stateful
// participle/v2 lexer (pkg/parser/parser.go's guixLexer, a Root/Template/
// TemplateExpr push/pop state machine for backtick-template
// interpolation) except that the push/pop happens implicitly through
// recursive-descent calls in pkg/parser rather than through participle's
// declarative state table: this grammar's argument-vs-text boundary
// (a bare ':' only separates arguments, never appears mid-text, while a
// lone ';' is ordinary text unless immediately followed by '}') needs a
// one-token lookahead that is easier to express as hand-written scanning
// than as a regex alternation. Position bookkeeping reuses the teacher's
// own position type directly.
package lexer

import (
	"fmt"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

// Position is the teacher's own position type: filename, byte offset,
// line, and column.
type Position = lexer.Position

// Scanner is a cursor over UTF-8 source text with line/column tracking.
type Scanner struct {
	filename string
	src      string
	offset   int // byte offset of the next unread rune
	line     int
	col      int
}

// New creates a Scanner positioned at the start of src.
func New(filename, src string) *Scanner {
	return &Scanner{
		filename: filename,
		src:      src,
		line:     1,
		col:      1,
	}
}

// Pos returns the position of the next unread rune.
func (s *Scanner) Pos() Position {
	return Position{
		Filename: s.filename,
		Offset:   s.offset,
		Line:     s.line,
		Column:   s.col,
	}
}

// Eof reports whether the scanner has consumed the whole input.
func (s *Scanner) Eof() bool {
	return s.offset >= len(s.src)
}

// Peek returns the next unread rune without consuming it.
func (s *Scanner) Peek() (rune, bool) {
	if s.Eof() {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.offset:])
	return r, true
}

// PeekAhead returns the rune n positions ahead of the cursor (0 ==
// Peek), or false if that position is past the end of input.
func (s *Scanner) PeekAhead(n int) (rune, bool) {
	off := s.offset
	var r rune
	for i := 0; i <= n; i++ {
		if off >= len(s.src) {
			return 0, false
		}
		var size int
		r, size = utf8.DecodeRuneInString(s.src[off:])
		off += size
	}
	return r, true
}

// HasPrefix reports whether the unread input begins with the literal
// string lit.
func (s *Scanner) HasPrefix(lit string) bool {
	return len(s.src)-s.offset >= len(lit) && s.src[s.offset:s.offset+len(lit)] == lit
}

// Next consumes and returns the next rune, advancing line/column state.
func (s *Scanner) Next() (rune, bool) {
	if s.Eof() {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(s.src[s.offset:])
	s.offset += size
	if r == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return r, true
}

// Advance consumes the literal string lit, which must already be known
// to be a prefix of the unread input (see HasPrefix).
func (s *Scanner) Advance(lit string) {
	for range lit {
		s.Next()
	}
}

// SkipSpace consumes a run of Unicode whitespace. Used only at envelope
// punctuation boundaries (§4.1 NEW of SPEC_FULL.md) — never inside
// argument text content.
func (s *Scanner) SkipSpace() {
	for {
		r, ok := s.Peek()
		if !ok || !isSpace(r) {
			return
		}
		s.Next()
	}
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// IsIdentStart reports whether r can start an identifier.
func IsIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsIdentCont reports whether r can continue an identifier.
func IsIdentCont(r rune) bool {
	return IsIdentStart(r) || (r >= '0' && r <= '9')
}

// ScanIdent consumes and returns an identifier, or an error at pos if
// none starts here.
func (s *Scanner) ScanIdent() (string, error) {
	start := s.offset
	r, ok := s.Peek()
	if !ok || !IsIdentStart(r) {
		return "", fmt.Errorf("expected identifier at %s", s.Pos())
	}
	for {
		r, ok := s.Peek()
		if !ok || !IsIdentCont(r) {
			break
		}
		s.Next()
	}
	return s.src[start:s.offset], nil
}
