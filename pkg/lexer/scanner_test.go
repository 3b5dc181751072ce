package lexer

import "testing"

func TestScanIdent(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		want    string
		wantErr bool
	}{
		{"simple", "foo", "foo", false},
		{"with digits", "foo2bar", "foo2bar", false},
		{"with underscore", "_foo_bar", "_foo_bar", false},
		{"stops at colon", "foo:bar", "foo", false},
		{"starts with digit fails", "2foo", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("<test>", tt.src)
			got, err := s.ScanIdent()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ScanIdent(%q) error = %v, wantErr %v", tt.src, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ScanIdent(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestHasPrefixAndAdvance(t *testing.T) {
	s := New("<test>", "{set:x:1;}")
	if !s.HasPrefix("{set") {
		t.Fatal("HasPrefix(\"{set\") should be true at the start of input")
	}
	s.Advance("{set")
	r, ok := s.Peek()
	if !ok || r != ':' {
		t.Errorf("Peek() after advancing past {set = %q, %v, want ':'", r, ok)
	}
}

func TestNextTracksLineAndColumn(t *testing.T) {
	s := New("<test>", "ab\ncd")
	s.Next() // a
	s.Next() // b
	pos := s.Pos()
	if pos.Line != 1 || pos.Column != 3 {
		t.Fatalf("position before newline = line %d col %d, want line 1 col 3", pos.Line, pos.Column)
	}
	s.Next() // \n
	pos = s.Pos()
	if pos.Line != 2 || pos.Column != 1 {
		t.Errorf("position after newline = line %d col %d, want line 2 col 1", pos.Line, pos.Column)
	}
}

func TestSkipSpace(t *testing.T) {
	s := New("<test>", "   \t\nfoo")
	s.SkipSpace()
	r, ok := s.Peek()
	if !ok || r != 'f' {
		t.Errorf("Peek() after SkipSpace = %q, %v, want 'f'", r, ok)
	}
}

func TestEof(t *testing.T) {
	s := New("<test>", "a")
	if s.Eof() {
		t.Fatal("Eof() should be false before consuming the only rune")
	}
	s.Next()
	if !s.Eof() {
		t.Error("Eof() should be true once input is exhausted")
	}
}

func TestPeekAhead(t *testing.T) {
	s := New("<test>", "abc")
	r, ok := s.PeekAhead(2)
	if !ok || r != 'c' {
		t.Errorf("PeekAhead(2) = %q, %v, want 'c', true", r, ok)
	}
	if _, ok := s.PeekAhead(5); ok {
		t.Error("PeekAhead past the end of input should report false")
	}
}
