package env

import (
	"testing"

	"github.com/Frawstcrabs/IndividualProject/pkg/value"
)

func TestLookupWalksParentChain(t *testing.T) {
	root := New()
	root.Declare("x", value.Int(1))
	child := root.Child()
	if v, ok := child.Lookup("x"); !ok || v.AsInt() != 1 {
		t.Fatalf("child.Lookup(x) = %v, %v, want 1, true", v, ok)
	}
	if _, ok := root.Lookup("missing"); ok {
		t.Error("Lookup of an unbound name should report false")
	}
}

func TestAssignRewritesOuterBinding(t *testing.T) {
	root := New()
	root.Declare("x", value.Int(1))
	child := root.Child()
	child.Assign("x", value.Int(2))
	v, _ := root.Lookup("x")
	if v.AsInt() != 2 {
		t.Errorf("Assign from a child frame should rewrite the outer binding, got %v", v.AsInt())
	}
	if _, ok := child.vars["x"]; ok {
		t.Error("Assign should not create a shadowing binding in the child frame when the name is already bound outward")
	}
}

func TestAssignCreatesInInnermostFrameWhenUnbound(t *testing.T) {
	root := New()
	child := root.Child()
	child.Assign("y", value.Int(5))
	if _, ok := root.Lookup("y"); ok {
		t.Error("an unbound name assigned from child should not leak into the parent frame")
	}
	if v, ok := child.Lookup("y"); !ok || v.AsInt() != 5 {
		t.Errorf("child.Lookup(y) = %v, %v, want 5, true", v, ok)
	}
}

func TestDeclareShadowsOuterBinding(t *testing.T) {
	root := New()
	root.Declare("x", value.Int(1))
	child := root.Child()
	child.Declare("x", value.Int(99))
	v, _ := child.Lookup("x")
	if v.AsInt() != 99 {
		t.Errorf("child.Lookup(x) = %v, want 99 (shadowed)", v.AsInt())
	}
	outer, _ := root.Lookup("x")
	if outer.AsInt() != 1 {
		t.Errorf("root's binding should be untouched by the child's Declare, got %v", outer.AsInt())
	}
}

func TestHas(t *testing.T) {
	root := New()
	root.Declare("x", value.Int(1))
	child := root.Child()
	if !child.Has("x") {
		t.Error("Has should see bindings from outer frames")
	}
	if child.Has("nope") {
		t.Error("Has should report false for an unbound name")
	}
}

func TestNamesDeduplicatesShadowedBindings(t *testing.T) {
	root := New()
	root.Declare("x", value.Int(1))
	root.Declare("y", value.Int(2))
	child := root.Child()
	child.Declare("x", value.Int(3))
	names := child.Names()
	count := 0
	for _, n := range names {
		if n == "x" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Names() should list a shadowed name once, saw it %d times in %v", count, names)
	}
}
