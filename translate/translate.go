package translate

import (
	"fmt"
	"strconv"

	"github.com/signadot/cascade/cfgerr"
	"github.com/signadot/cascade/cfgjson"
	"github.com/signadot/cascade/node"
)

// Error reports a translation failure, with the current-path context
// carried through the recursive descent for diagnostics.
type Error struct {
	Path    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *Error) Unwrap() error {
	return cfgerr.ErrSchema
}

func errf(path, format string, args ...any) error {
	return &Error{Path: path, Message: fmt.Sprintf(format, args...)}
}

// FromJSON translates a decoded JSON value into a configuration Node tree.
// path is the current node path, used only to annotate errors.
func FromJSON(v cfgjson.Value, path string) (*node.Node, error) {
	switch v.Kind {
	case cfgjson.NullKind:
		return node.Null(), nil
	case cfgjson.BoolKind:
		return node.FromValue(v.Bool), nil
	case cfgjson.NumberKind:
		return node.FromValue(numberToAny(v.Number)), nil
	case cfgjson.StringKind:
		return node.FromValue(v.String), nil
	case cfgjson.ArrayKind:
		return fromArray(v, path)
	case cfgjson.ObjectKind:
		return fromObject(v, path)
	default:
		return nil, errf(path, "unrecognized JSON value kind")
	}
}

func fromArray(v cfgjson.Value, path string) (*node.Node, error) {
	res := node.NewArray()
	for i, el := range v.Array {
		elPath := node.AppendNodeToPath(path, strconv.Itoa(i))
		elNode, err := FromJSON(el, elPath)
		if err != nil {
			return nil, err
		}
		res.AppendElement(elNode)
	}
	return res, nil
}

// decorator is the leading character stripped from an object member key,
// selecting how its value is interpreted.
type decorator byte

const (
	none      decorator = 0
	valueDeco decorator = '#'
	refDeco   decorator = '&'
)

func splitDecorator(key string) (decorator, string) {
	if key == "" {
		return none, key
	}
	switch key[0] {
	case byte(valueDeco):
		return valueDeco, key[1:]
	case byte(refDeco):
		return refDeco, key[1:]
	default:
		return none, key
	}
}

func fromObject(v cfgjson.Value, path string) (*node.Node, error) {
	res := node.NewObject()
	seen := map[string]bool{}
	for _, m := range v.Object {
		deco, name := splitDecorator(m.Key)
		if !node.ValidateNodeName(name) {
			return nil, errf(path, "invalid member name %q", m.Key)
		}
		if seen[name] {
			return nil, errf(path, "duplicate member name %q", name)
		}
		seen[name] = true
		memberPath := node.AppendNodeToPath(path, name)

		var memberNode *node.Node
		var err error
		switch deco {
		case none:
			memberNode, err = FromJSON(m.Value, memberPath)
		case valueDeco:
			memberNode = node.FromValue(m.Value)
		case refDeco:
			memberNode, err = fromReferenceFamily(m.Value, memberPath)
		}
		if err != nil {
			return nil, err
		}
		res.SetMember(name, memberNode)
	}
	return res, nil
}

func fromReferenceFamily(v cfgjson.Value, path string) (*node.Node, error) {
	switch v.Kind {
	case cfgjson.StringKind:
		return node.FromReference(v.String), nil
	case cfgjson.ArrayKind:
		return fromDerivedArray(v, path)
	case cfgjson.ObjectKind:
		return fromDerivedObject(v, path)
	default:
		return nil, errf(path, "a \"&\"-prefixed member must be a string, array, or object")
	}
}

func fromDerivedArray(v cfgjson.Value, path string) (*node.Node, error) {
	res := &node.Node{Type: node.DerivedArrayType}
	for i, el := range v.Array {
		elPath := node.AppendNodeToPath(path, strconv.Itoa(i))
		if el.Kind != cfgjson.ObjectKind || len(el.Object) != 1 {
			return nil, errf(elPath, "each DerivedArray element must be an object with exactly one \"element\" member")
		}
		m := el.Object[0]
		deco, name := splitDecorator(m.Key)
		if name != "element" {
			return nil, errf(elPath, "DerivedArray element member must be named \"element\", got %q", m.Key)
		}
		var elNode *node.Node
		var err error
		switch deco {
		case none:
			elNode, err = FromJSON(m.Value, elPath)
		case valueDeco:
			elNode = node.FromValue(m.Value)
		case refDeco:
			elNode, err = fromReferenceFamily(m.Value, elPath)
		}
		if err != nil {
			return nil, err
		}
		res.AppendElement(elNode)
	}
	return res, nil
}

func fromDerivedObject(v cfgjson.Value, path string) (*node.Node, error) {
	var baseMember, configMember *cfgjson.Value
	for i := range v.Object {
		m := &v.Object[i]
		switch m.Key {
		case "base":
			baseMember = &m.Value
		case "config":
			configMember = &m.Value
		default:
			return nil, errf(path, "unrecognized DerivedObject member %q", m.Key)
		}
	}
	if baseMember == nil {
		return nil, errf(path, "DerivedObject is missing the required \"base\" member")
	}
	bases, err := readBases(*baseMember, path)
	if err != nil {
		return nil, err
	}

	config := node.Null()
	if configMember != nil {
		switch configMember.Kind {
		case cfgjson.NullKind:
			config = node.Null()
		case cfgjson.ObjectKind:
			config, err = fromObject(*configMember, node.AppendNodeToPath(path, "config"))
			if err != nil {
				return nil, err
			}
		default:
			return nil, errf(path, "DerivedObject \"config\" member must be null or an object")
		}
	}
	return node.NewDerivedObject(bases, config), nil
}

func readBases(v cfgjson.Value, path string) ([]string, error) {
	switch v.Kind {
	case cfgjson.StringKind:
		return []string{v.String}, nil
	case cfgjson.ArrayKind:
		if len(v.Array) == 0 {
			return nil, errf(path, "DerivedObject \"base\" array must not be empty")
		}
		res := make([]string, len(v.Array))
		for i, el := range v.Array {
			if el.Kind != cfgjson.StringKind {
				return nil, errf(path, "DerivedObject \"base\" array element %d must be a string", i)
			}
			res[i] = el.String
		}
		return res, nil
	default:
		return nil, errf(path, "DerivedObject \"base\" must be a string or a non-empty array of strings")
	}
}

// numberToAny parses a JSON number's decimal text into an int64 or,
// failing that, a float64 — matching the payload the ordinary (non-opaque)
// Value leaves carry.
func numberToAny(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
