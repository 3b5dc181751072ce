// Package env implements the lexically scoped environment frame chain
// (§3 of SPEC_FULL.md): lookup walks outward until a name is found;
// writing an existing name rewrites it wherever it lives; writing a new
// name creates it in the innermost frame.
package env

import "github.com/Frawstcrabs/IndividualProject/pkg/value"

// Frame is one scope level. Frames form a linked chain via Parent, and
// are shared (reference) types: a Func closure captures a *Frame
// pointer, so later mutations of that frame's bindings (within the
// defining scope) are visible to the closure, per §3's Func invariant.
type Frame struct {
	Parent *Frame
	vars   map[string]value.Value
}

// New creates a root frame with no parent.
func New() *Frame {
	return &Frame{vars: make(map[string]value.Value)}
}

// Child creates a new frame nested under f.
func (f *Frame) Child() *Frame {
	return &Frame{Parent: f, vars: make(map[string]value.Value)}
}

// Lookup walks outward from f looking for name, returning its value and
// whether it was found.
func (f *Frame) Lookup(name string) (value.Value, bool) {
	for fr := f; fr != nil; fr = fr.Parent {
		if v, ok := fr.vars[name]; ok {
			return v, true
		}
	}
	return value.Value{}, false
}

// owner returns the frame in which name is already bound, or nil.
func (f *Frame) owner(name string) *Frame {
	for fr := f; fr != nil; fr = fr.Parent {
		if _, ok := fr.vars[name]; ok {
			return fr
		}
	}
	return nil
}

// Assign rewrites name in the frame where it already lives, or creates
// it in f (the innermost frame) if unbound anywhere in the chain.
func (f *Frame) Assign(name string, v value.Value) {
	if owner := f.owner(name); owner != nil {
		owner.vars[name] = v
		return
	}
	f.vars[name] = v
}

// Declare binds name in f itself, shadowing any outer binding of the
// same name, regardless of whether it already exists in an outer frame.
func (f *Frame) Declare(name string, v value.Value) {
	f.vars[name] = v
}

// Has reports whether name is bound anywhere in the chain from f.
func (f *Frame) Has(name string) bool {
	return f.owner(name) != nil
}

// Names returns every name visible from f (used by internal/suggest for
// "did you mean" diagnostics), innermost frame first, without
// duplicates from shadowing.
func (f *Frame) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for fr := f; fr != nil; fr = fr.Parent {
		for name := range fr.vars {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}
