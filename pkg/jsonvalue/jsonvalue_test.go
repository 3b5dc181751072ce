package jsonvalue

import (
	"testing"

	"github.com/Frawstcrabs/IndividualProject/pkg/value"
)

func TestMarshalScalars(t *testing.T) {
	tests := []struct {
		name string
		v    value.Value
		want string
	}{
		{"nil", value.Nil(), "null"},
		{"bool true", value.Bool(true), "true"},
		{"int", value.Int(42), "42"},
		{"str", value.Str("hi"), `"hi"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Marshal(tt.v)
			if err != nil {
				t.Fatalf("Marshal error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Marshal(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestMarshalStringEscapes(t *testing.T) {
	got, err := Marshal(value.Str("a\"b\\c\nd"))
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	want := `"a\"b\\c\nd"`
	if got != want {
		t.Errorf("Marshal = %q, want %q", got, want)
	}
}

func TestMarshalListPreservesOrder(t *testing.T) {
	v := value.FromList(value.NewList(value.Int(1), value.Int(2), value.Int(3)))
	got, err := Marshal(v)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if got != "[1,2,3]" {
		t.Errorf("Marshal = %q, want %q", got, "[1,2,3]")
	}
}

func TestMarshalMapPreservesInsertionOrder(t *testing.T) {
	m := value.NewMap()
	m.Set("b", value.Int(2))
	m.Set("a", value.Int(1))
	got, err := Marshal(value.FromMap(m))
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if got != `{"b":2,"a":1}` {
		t.Errorf("Marshal = %q, want insertion-ordered keys", got)
	}
}

func TestMarshalFuncErrors(t *testing.T) {
	fn := value.NewFunc("f", nil, nil, nil)
	if _, err := Marshal(value.FromFunc(fn)); err == nil {
		t.Error("expected an error marshaling a Func to JSON")
	}
}

func TestUnmarshalRoundTripsScalarsAndContainers(t *testing.T) {
	v, err := Unmarshal(`{"a":1,"b":[1,2,"x"],"c":null,"d":true}`)
	if err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if v.Kind() != value.KindMap {
		t.Fatalf("Unmarshal top level = %v, want a Map", v.Kind())
	}
	m := v.AsMap()
	a, _ := m.Get("a")
	if a.Kind() != value.KindInt || a.AsInt() != 1 {
		t.Errorf("m[a] = %v, want Int(1)", a)
	}
	b, _ := m.Get("b")
	if b.Kind() != value.KindList || b.AsList().Len() != 3 {
		t.Errorf("m[b] = %v, want a 3-element List", b)
	}
	c, _ := m.Get("c")
	if c.Kind() != value.KindNil {
		t.Errorf("m[c] = %v, want Nil", c)
	}
	d, _ := m.Get("d")
	if d.Kind() != value.KindBool || !d.AsBool() {
		t.Errorf("m[d] = %v, want Bool(true)", d)
	}
}

func TestUnmarshalIntVsFloat(t *testing.T) {
	v, err := Unmarshal(`[1, 1.5]`)
	if err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	items := v.AsList().Items()
	if items[0].Kind() != value.KindInt {
		t.Errorf("items[0].Kind() = %v, want Int for a whole-number literal", items[0].Kind())
	}
	if items[1].Kind() != value.KindFloat {
		t.Errorf("items[1].Kind() = %v, want Float for a fractional literal", items[1].Kind())
	}
}

func TestUnmarshalInvalidJSONErrors(t *testing.T) {
	if _, err := Unmarshal("{not json"); err == nil {
		t.Error("expected an error parsing invalid JSON")
	}
}
