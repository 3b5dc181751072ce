package eval

import (
	"strconv"

	"github.com/Frawstcrabs/IndividualProject/pkg/value"
)

// Render implements the language's statement-position textual rendering
// rule (SPEC_FULL.md §4.2): Int/Float/Bool/Str produce text, Nil/List/
// Map/Func produce none (the ok return is false).
func Render(v value.Value) (string, bool) {
	switch v.Kind() {
	case value.KindStr:
		return v.AsStr(), true
	case value.KindBool:
		if v.AsBool() {
			return "true", true
		}
		return "false", true
	case value.KindInt:
		return strconv.FormatInt(v.AsInt(), 10), true
	case value.KindFloat:
		return formatFloat(v.AsFloat()), true
	default:
		return "", false
	}
}

// formatFloat renders the shortest decimal that round-trips to f, per
// the Open Question resolution in SPEC_FULL.md §9 NEW: strconv's 'g'
// verb with precision -1 gives the shortest round-trip digits, but
// drops the decimal point for integral values (and for anything it
// puts in exponential form) — appending ".0" only when neither a '.'
// nor an exponent is already present keeps Float textually distinct
// from Int without double-appending in the exponential case.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'E' {
			return s
		}
	}
	return s + ".0"
}
