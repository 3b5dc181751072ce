// Package jsonvalue bridges pkg/value.Value and JSON text for the
// tojson/fromjson built-ins (SPEC_FULL.md §4.3 NEW), using
// github.com/bitly/go-simplejson as the JSON backend: its untyped
// *simplejson.Json wrapper over interface{} mirrors Value's own
// "tagged dynamic value" shape closely enough that converting between
// the two is a direct structural walk in both directions, with no
// intermediate Go struct/tag machinery to maintain.
package jsonvalue

import (
	"fmt"

	"github.com/bitly/go-simplejson"

	"github.com/Frawstcrabs/IndividualProject/pkg/value"
)

// Marshal renders v as a JSON document: Nil becomes null, Map preserves
// insertion order is NOT guaranteed by encoding/json's map handling, so
// Marshal walks the Map's own Keys() order and builds the document text
// directly rather than asking simplejson to encode a Go map. A Func
// value has no JSON representation and is a type error.
func Marshal(v value.Value) (string, error) {
	var b []byte
	if err := marshalInto(&b, v); err != nil {
		return "", err
	}
	return string(b), nil
}

func marshalInto(b *[]byte, v value.Value) error {
	switch v.Kind() {
	case value.KindNil:
		*b = append(*b, "null"...)
	case value.KindBool:
		if v.AsBool() {
			*b = append(*b, "true"...)
		} else {
			*b = append(*b, "false"...)
		}
	case value.KindInt:
		*b = append(*b, []byte(fmt.Sprintf("%d", v.AsInt()))...)
	case value.KindFloat:
		*b = append(*b, []byte(fmt.Sprintf("%g", v.AsFloat()))...)
	case value.KindStr:
		*b = append(*b, quoteJSON(v.AsStr())...)
	case value.KindList:
		*b = append(*b, '[')
		items := v.AsList().Items()
		for i, item := range items {
			if i > 0 {
				*b = append(*b, ',')
			}
			if err := marshalInto(b, item); err != nil {
				return err
			}
		}
		*b = append(*b, ']')
	case value.KindMap:
		*b = append(*b, '{')
		m := v.AsMap()
		for i, k := range m.Keys() {
			if i > 0 {
				*b = append(*b, ',')
			}
			*b = append(*b, quoteJSON(k)...)
			*b = append(*b, ':')
			fv, _ := m.Get(k)
			if err := marshalInto(b, fv); err != nil {
				return err
			}
		}
		*b = append(*b, '}')
	case value.KindFunc:
		return fmt.Errorf("cannot convert a Func to JSON")
	default:
		return fmt.Errorf("cannot convert %s to JSON", v.TypeName())
	}
	return nil
}

func quoteJSON(s string) string {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	for _, r := range s {
		switch r {
		case '"':
			out = append(out, '\\', '"')
		case '\\':
			out = append(out, '\\', '\\')
		case '\n':
			out = append(out, '\\', 'n')
		case '\t':
			out = append(out, '\\', 't')
		default:
			out = append(out, string(r)...)
		}
	}
	out = append(out, '"')
	return string(out)
}

// Unmarshal parses a JSON document into a Value: object -> Map
// (insertion order follows simplejson's own key order), array -> List,
// a number with no fractional/exponent part -> Int, else Float.
func Unmarshal(text string) (value.Value, error) {
	js, err := simplejson.NewJson([]byte(text))
	if err != nil {
		return value.Value{}, err
	}
	return fromJSON(js)
}

func fromJSON(js *simplejson.Json) (value.Value, error) {
	if m, err := js.Map(); err == nil {
		// go-simplejson (like encoding/json underneath it) decodes a
		// JSON object into a plain Go map, so the original key order
		// from the document text is already lost by this point; the
		// Map built here is insertion-ordered in terms of its own
		// Set calls, but that order is Go's randomized map iteration
		// order, not the source document's order. JSON objects are
		// unordered by spec, so fromjson does not promise to recover
		// an order that was never guaranteed to exist.
		result := value.NewMap()
		for k := range m {
			child := js.Get(k)
			v, err := fromJSON(child)
			if err != nil {
				return value.Value{}, err
			}
			result.Set(k, v)
		}
		return value.FromMap(result), nil
	}
	if arr, err := js.Array(); err == nil {
		items := make([]value.Value, len(arr))
		for i := range arr {
			v, err := fromJSON(js.GetIndex(i))
			if err != nil {
				return value.Value{}, err
			}
			items[i] = v
		}
		return value.FromList(value.NewList(items...)), nil
	}
	if s, err := js.String(); err == nil {
		return value.Str(s), nil
	}
	if b, err := js.Bool(); err == nil {
		return value.Bool(b), nil
	}
	if js.Interface() == nil {
		return value.Nil(), nil
	}
	if i, err := js.Int64(); err == nil {
		if f, ferr := js.Float64(); ferr == nil && f == float64(i) {
			return value.Int(i), nil
		}
	}
	if f, err := js.Float64(); err == nil {
		return value.Float(f), nil
	}
	return value.Value{}, fmt.Errorf("unsupported JSON value")
}
