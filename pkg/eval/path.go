package eval

import (
	"github.com/Frawstcrabs/IndividualProject/pkg/ast"
	"github.com/Frawstcrabs/IndividualProject/pkg/builtins"
	"github.com/Frawstcrabs/IndividualProject/pkg/env"
	"github.com/Frawstcrabs/IndividualProject/internal/suggest"
	"github.com/Frawstcrabs/IndividualProject/pkg/langerr"
	"github.com/Frawstcrabs/IndividualProject/pkg/value"
)

// place is a resolved, assignable location: a bound name in a frame, or
// an element inside a List/Map container reached through it. Containers
// are shared-mutable (§3), so mutating through a place never needs to
// write the container itself back into its parent — only the leaf slot
// changes.
type place struct {
	frame *env.Frame
	name  string

	list *value.List
	idx  int

	mp  *value.Map
	key string

	// readOnly wraps a synthesized value (a single-code-point string
	// read from a string index) that has no underlying container slot
	// to write back into.
	readOnly bool
	val      value.Value
}

func (p place) get() (value.Value, bool) {
	switch {
	case p.readOnly:
		return p.val, true
	case p.list != nil:
		return p.list.Get(p.idx)
	case p.mp != nil:
		return p.mp.Get(p.key)
	default:
		return p.frame.Lookup(p.name)
	}
}

func (p place) set(v value.Value) bool {
	switch {
	case p.readOnly:
		return false
	case p.list != nil:
		return p.list.Set(p.idx, v)
	case p.mp != nil:
		p.mp.Set(p.key, v)
		return true
	default:
		p.frame.Assign(p.name, v)
		return true
	}
}

// readPath resolves path for reading and returns its current value.
func (e *Evaluator) readPath(path *ast.Path) (value.Value, error) {
	pl, err := e.resolvePath(path, false)
	if err != nil {
		return value.Value{}, err
	}
	v, ok := pl.get()
	if !ok {
		return value.Value{}, langerr.New(langerr.Index, path.Pos, path.String(), "no value at path '%s'", path.String())
	}
	return v, nil
}

// resolvePath walks path's base and segments to a place. The base name
// must already be bound — an unbound base is always a Name error, for
// both reads and writes. For writes, only the path's *final* segment
// may denote a fresh slot (a new Map key); every segment before it, and
// every segment at all when reading, must already resolve (§9 NEW).
func (e *Evaluator) resolvePath(path *ast.Path, forWrite bool) (place, error) {
	if len(path.Segments) == 0 {
		if !forWrite && !e.frame.Has(path.Base) {
			return place{}, e.nameError(path.Pos, path.Base)
		}
		return place{frame: e.frame, name: path.Base}, nil
	}

	cur, ok := e.frame.Lookup(path.Base)
	if !ok {
		return place{}, e.nameError(path.Pos, path.Base)
	}

	for i, seg := range path.Segments {
		last := i == len(path.Segments)-1
		write := forWrite && last

		if seg.IsIndex() {
			idxVal, err := e.evalNodeList(seg.Index, seg.Pos)
			if err != nil {
				return place{}, err
			}
			switch cur.Kind() {
			case value.KindList:
				lst := cur.AsList()
				num, ok := value.CoerceNumber(idxVal)
				if !ok || num.Kind() != value.KindInt {
					return place{}, langerr.New(langerr.Type, seg.Pos, path.String(), "list index must be an Int")
				}
				idx := int(num.AsInt())
				if write {
					return place{list: lst, idx: idx}, nil
				}
				v, ok := lst.Get(idx)
				if !ok {
					return place{}, langerr.New(langerr.Index, seg.Pos, path.String(), "list index %d out of range (length %d)", idx, lst.Len())
				}
				if last {
					return place{list: lst, idx: idx}, nil
				}
				cur = v
			case value.KindMap:
				mp := cur.AsMap()
				key := idxVal.String()
				if write {
					return place{mp: mp, key: key}, nil
				}
				v, ok := mp.Get(key)
				if !ok {
					return place{}, langerr.New(langerr.Index, seg.Pos, path.String(), "map has no key %q", key)
				}
				if last {
					return place{mp: mp, key: key}, nil
				}
				cur = v
			case value.KindStr:
				if forWrite && last {
					return place{}, langerr.New(langerr.Type, seg.Pos, path.String(), "a Str's characters cannot be assigned through an index")
				}
				runes := []rune(cur.AsStr())
				num, ok := value.CoerceNumber(idxVal)
				if !ok || num.Kind() != value.KindInt {
					return place{}, langerr.New(langerr.Type, seg.Pos, path.String(), "string index must be an Int")
				}
				idx := int(num.AsInt())
				if idx < 0 || idx >= len(runes) {
					return place{}, langerr.New(langerr.Index, seg.Pos, path.String(), "string index %d out of range (length %d)", idx, len(runes))
				}
				if last {
					return place{readOnly: true, val: value.Str(string(runes[idx]))}, nil
				}
				return place{}, langerr.New(langerr.Type, seg.Pos, path.String(), "cannot index further into a Str character")
			default:
				return place{}, langerr.New(langerr.Type, seg.Pos, path.String(), "cannot index a %s", cur.TypeName())
			}
			continue
		}

		// .field segment: ordinarily a literal Map key. A non-Map
		// receiver has no keys, only methods, so a bare path reference
		// ending in one (e.g. {b.length} on a List) is routed through
		// the same zero-arg method dispatch the ";}" call form uses,
		// rather than failing as a Map lookup.
		if cur.Kind() != value.KindMap {
			if write {
				return place{}, langerr.New(langerr.Type, seg.Pos, path.String(), ".%s requires a Map, got %s", seg.Field, cur.TypeName())
			}
			v, err := builtins.Method(seg.Field, seg.Pos, cur, nil)
			if err != nil {
				return place{}, err
			}
			if last {
				return place{readOnly: true, val: v}, nil
			}
			cur = v
			continue
		}
		mp := cur.AsMap()
		if write {
			return place{mp: mp, key: seg.Field}, nil
		}
		v, ok := mp.Get(seg.Field)
		if !ok {
			return place{}, langerr.New(langerr.Index, seg.Pos, path.String(), "map has no key %q", seg.Field)
		}
		if last {
			return place{mp: mp, key: seg.Field}, nil
		}
		cur = v
	}

	return place{}, langerr.New(langerr.Parse, path.Pos, path.String(), "empty path")
}

func (e *Evaluator) nameError(pos ast.Position, name string) error {
	hint := suggest.Hint(name, e.frame.Names())
	return langerr.New(langerr.Name, pos, name, "undefined name '%s'%s", name, hint)
}
