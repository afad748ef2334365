package node

import "fmt"

// ToAny converts a fully resolved node (Null/Value/Array/Object) into a
// plain Go value built from nil, bool, float64/int64/string, []any, and
// map[string]any — suitable for encoding/json or debug formatting. It
// panics if n is not fully resolved.
func ToAny(n *Node) any {
	switch n.Type {
	case NullType:
		return nil
	case ValueType:
		if opaque, ok := n.Value.(interface{ ToAny() any }); ok {
			return opaque.ToAny()
		}
		return n.Value
	case ArrayType:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = ToAny(v)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(n.Fields))
		for i, f := range n.Fields {
			res[f] = ToAny(n.Values[i])
		}
		return res
	default:
		panic(fmt.Sprintf("ToAny: node at %s is not fully resolved (%s)", n.AbsoluteNodePath(), n.Type))
	}
}
