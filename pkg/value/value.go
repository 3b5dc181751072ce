// Package value implements the dynamically-typed value model (§3 of
// SPEC_FULL.md): a tagged union of Nil/Int/Float/Bool/Str plus the
// shared-mutable List/Map/Func container kinds.
package value

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/Frawstcrabs/IndividualProject/pkg/ast"
)

// Kind identifies which variant a Value holds.
type Kind string

const (
	KindNil   Kind = "nil"
	KindInt   Kind = "int"
	KindFloat Kind = "float"
	KindBool  Kind = "bool"
	KindStr   Kind = "str"
	KindList  Kind = "list"
	KindMap   Kind = "map"
	KindFunc  Kind = "func"
)

// Value is the tagged union every directive produces and consumes.
// Scalars (Nil/Int/Float/Bool/Str) are copied by value; List/Map/Func
// are reference types (pointer payloads) with shared-mutable identity,
// exactly as §3 requires.
type Value struct {
	kind Kind
	i    int64
	f    float64
	b    bool
	s    string
	list *List
	mp   *Map
	fn   *Func
}

func (v Value) Kind() Kind { return v.kind }

func Nil() Value                { return Value{kind: KindNil} }
func Int(i int64) Value         { return Value{kind: KindInt, i: i} }
func Float(f float64) Value     { return Value{kind: KindFloat, f: f} }
func Bool(b bool) Value         { return Value{kind: KindBool, b: b} }
func Str(s string) Value        { return Value{kind: KindStr, s: s} }
func FromList(l *List) Value    { return Value{kind: KindList, list: l} }
func FromMap(m *Map) Value      { return Value{kind: KindMap, mp: m} }
func FromFunc(fn *Func) Value   { return Value{kind: KindFunc, fn: fn} }

func (v Value) IsNil() bool  { return v.kind == KindNil }
func (v Value) AsInt() int64 { return v.i }
func (v Value) AsFloat() float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}
	return v.f
}
func (v Value) AsBool() bool    { return v.b }
func (v Value) AsStr() string   { return v.s }
func (v Value) AsList() *List   { return v.list }
func (v Value) AsMap() *Map     { return v.mp }
func (v Value) AsFunc() *Func   { return v.fn }

// IsNumber reports whether v is Int or Float.
func (v Value) IsNumber() bool { return v.kind == KindInt || v.kind == KindFloat }

// CoerceNumber views v as a number for a built-in that expects one:
// Int/Float pass through unchanged, and a Str that parses exactly as an
// integer or float literal coerces, per the "Argument typing" rule
// (SPEC_FULL.md §4.2 NEW). Anything else fails.
func CoerceNumber(v Value) (Value, bool) {
	switch v.kind {
	case KindInt, KindFloat:
		return v, true
	case KindStr:
		if i, err := strconv.ParseInt(v.s, 10, 64); err == nil {
			return Int(i), true
		}
		if f, err := strconv.ParseFloat(v.s, 64); err == nil {
			return Float(f), true
		}
	}
	return Value{}, false
}

// Truthy implements the language's boolification rule (§4.2): numbers
// are true iff non-zero; empty string/list/map are false; Nil is false;
// Bool passes through; Func is always true.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNil:
		return false
	case KindBool:
		return v.b
	case KindInt:
		return v.i != 0
	case KindFloat:
		return v.f != 0
	case KindStr:
		return len(v.s) > 0
	case KindList:
		return v.list.Len() > 0
	case KindMap:
		return v.mp.Len() > 0
	case KindFunc:
		return true
	default:
		return false
	}
}

// Equal implements structural equality for eq/neq (§4.3): numbers
// compare numerically across Int/Float, everything else compares by
// kind and, for containers, by recursive structural equality (not
// identity).
func Equal(a, b Value) bool {
	if a.IsNumber() && b.IsNumber() {
		return a.AsFloat() == b.AsFloat()
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNil:
		return true
	case KindBool:
		return a.b == b.b
	case KindStr:
		return a.s == b.s
	case KindList:
		al, bl := a.list.Items(), b.list.Items()
		if len(al) != len(bl) {
			return false
		}
		for i := range al {
			if !Equal(al[i], bl[i]) {
				return false
			}
		}
		return true
	case KindMap:
		ak, bk := a.mp.Keys(), b.mp.Keys()
		if len(ak) != len(bk) {
			return false
		}
		for _, k := range ak {
			av, _ := a.mp.Get(k)
			bv, ok := b.mp.Get(k)
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	case KindFunc:
		return a.fn == b.fn
	default:
		return false
	}
}

// List is a mutable, ordered sequence of Value with shared identity.
type List struct {
	id    uuid.UUID
	items []Value
}

// NewList constructs a List from the given items (copied into the
// list's own backing slice).
func NewList(items ...Value) *List {
	l := &List{id: uuid.New(), items: make([]Value, len(items))}
	copy(l.items, items)
	return l
}

func (l *List) ID() uuid.UUID  { return l.id }
func (l *List) Len() int       { return len(l.items) }
func (l *List) Items() []Value { return l.items }

func (l *List) Get(i int) (Value, bool) {
	if i < 0 || i >= len(l.items) {
		return Value{}, false
	}
	return l.items[i], true
}

func (l *List) Set(i int, v Value) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}
	l.items[i] = v
	return true
}

func (l *List) Push(v Value) {
	l.items = append(l.items, v)
}

// Pop removes and returns the last element, or false if the list is
// empty.
func (l *List) Pop() (Value, bool) {
	if len(l.items) == 0 {
		return Value{}, false
	}
	last := l.items[len(l.items)-1]
	l.items = l.items[:len(l.items)-1]
	return last, true
}

// IndexOf returns the index of the first element structurally equal to
// v, or -1.
func (l *List) IndexOf(v Value) int {
	for i, item := range l.items {
		if Equal(item, v) {
			return i
		}
	}
	return -1
}

// Map is an insertion-ordered mapping from string keys to Value with
// shared identity.
type Map struct {
	id    uuid.UUID
	order []string
	data  map[string]Value
}

// NewMap constructs an empty, insertion-ordered Map.
func NewMap() *Map {
	return &Map{id: uuid.New(), data: make(map[string]Value)}
}

func (m *Map) ID() uuid.UUID { return m.id }
func (m *Map) Len() int      { return len(m.order) }

func (m *Map) Get(key string) (Value, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *Map) Has(key string) bool {
	_, ok := m.data[key]
	return ok
}

// Set inserts or overwrites key, preserving first-insertion order.
func (m *Map) Set(key string, v Value) {
	if _, exists := m.data[key]; !exists {
		m.order = append(m.order, key)
	}
	m.data[key] = v
}

// Keys returns keys in insertion order.
func (m *Map) Keys() []string {
	return m.order
}

// Values returns values in the same order as Keys.
func (m *Map) Values() []Value {
	vs := make([]Value, len(m.order))
	for i, k := range m.order {
		vs[i] = m.data[k]
	}
	return vs
}

// Func is a user-defined closure: a parameter-name list, its body node,
// and the environment it was defined in. The Env field is declared as
// an empty interface here to avoid an import cycle with pkg/env (which
// in turn holds Values); pkg/eval does the type assertion back to
// *env.Frame.
type Func struct {
	id     uuid.UUID
	Name   string
	Params []string
	Body   ast.Node
	Env    interface{}
}

// NewFunc constructs a Func closure.
func NewFunc(name string, params []string, body ast.Node, capturedEnv interface{}) *Func {
	return &Func{id: uuid.New(), Name: name, Params: params, Body: body, Env: capturedEnv}
}

func (fn *Func) ID() uuid.UUID { return fn.id }

// TypeName returns the kind name the `type` built-in reports.
func (v Value) TypeName() string { return string(v.kind) }

func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindStr:
		return v.s
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		s := strconv.FormatFloat(v.f, 'g', -1, 64)
		for _, c := range s {
			if c == '.' || c == 'e' || c == 'E' {
				return s
			}
		}
		return s + ".0"
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	case KindList:
		return fmt.Sprintf("list<%d>", v.list.Len())
	case KindMap:
		return fmt.Sprintf("map<%d>", v.mp.Len())
	case KindFunc:
		return fmt.Sprintf("func<%s>", v.fn.Name)
	default:
		return "?"
	}
}
