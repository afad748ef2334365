package cfgjson

import "strconv"

// numberToAny parses a JSON number's decimal text into an int64 or,
// failing that, a float64.
func numberToAny(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// Kind discriminates the six JSON primitives a Decoder produces.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ArrayKind
	ObjectKind
)

// Member is one key/value pair of an ObjectKind Value, in declaration
// order.
type Member struct {
	Key   string
	Value Value
}

// Value is a JSON value tree: exactly one of the fields below is
// meaningful, selected by Kind. Object members retain declaration order,
// unlike Go's map[string]any.
type Value struct {
	Kind    Kind
	Bool    bool
	Number  string // decimal text exactly as it appeared in the source
	String  string
	Array   []Value
	Object  []Member
}

// ToAny converts v into a plain Go value built from nil, bool,
// int64/float64, string, []any, and map[string]any, the same shape
// node.ToAny produces for the four primitive node variants. An
// opaque-decorated "#name" member's payload is a Value precisely so
// this conversion can be deferred — and bypassed — until something
// (JSON encoding, a diff, a patch) actually needs a plain value instead
// of the byte-for-byte original.
func (v Value) ToAny() any {
	switch v.Kind {
	case NullKind:
		return nil
	case BoolKind:
		return v.Bool
	case NumberKind:
		return numberToAny(v.Number)
	case StringKind:
		return v.String
	case ArrayKind:
		res := make([]any, len(v.Array))
		for i, el := range v.Array {
			res[i] = el.ToAny()
		}
		return res
	case ObjectKind:
		res := make(map[string]any, len(v.Object))
		for _, m := range v.Object {
			res[m.Key] = m.Value.ToAny()
		}
		return res
	default:
		return nil
	}
}
