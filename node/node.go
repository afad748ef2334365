package node

import "fmt"

// Node is one element of a configuration tree. Only the fields relevant to
// Type are meaningful; see the package doc for the full discriminated
// union.
type Node struct {
	Type Type

	Parent      *Node
	ParentIndex int    // valid when Parent.Type is ArrayType or DerivedArrayType
	ParentField string // valid when Parent.Type is ObjectType

	// ObjectType / DerivedObjectType's Config (when Config.Type == ObjectType)
	Fields []string
	// ArrayType / ObjectType / DerivedArrayType elements or member values
	Values []*Node

	// ValueType
	Value any

	// ReferenceType
	Reference string

	// DerivedObjectType
	Bases  []string
	Config *Node // Null or Object
}

// Null returns a new Null node.
func Null() *Node {
	return &Node{Type: NullType}
}

// FromValue returns a new Value node carrying v.
func FromValue(v any) *Node {
	return &Node{Type: ValueType, Value: v}
}

// FromReference returns a new NodeReference node pointing at path.
func FromReference(path string) *Node {
	return &Node{Type: ReferenceType, Reference: path}
}

// NewArray returns a new, empty Array node.
func NewArray() *Node {
	return &Node{Type: ArrayType}
}

// NewObject returns a new, empty Object node.
func NewObject() *Node {
	return &Node{Type: ObjectType}
}

// NewDerivedArray returns a new DerivedArray node with the given elements.
// Each element's Parent is set to the returned node.
func NewDerivedArray(elements ...*Node) *Node {
	res := &Node{Type: DerivedArrayType}
	for _, e := range elements {
		res.AppendElement(e)
	}
	return res
}

// NewDerivedObject returns a new DerivedObject node. config may be nil, in
// which case a Null node is used: the resolved object then carries only
// what its bases contribute.
func NewDerivedObject(bases []string, config *Node) *Node {
	if config == nil {
		config = Null()
	}
	res := &Node{Type: DerivedObjectType, Bases: bases}
	res.Config = config
	config.Parent = res
	return res
}

// IsRoot reports whether this node has no parent.
func (n *Node) IsRoot() bool {
	return n.Parent == nil
}

// Root walks up the parent chain and returns the root of the tree n
// belongs to.
func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Member returns the value stored under name on an Object node, or nil if
// absent. It panics if n is not an Object node.
func (n *Node) Member(name string) *Node {
	if n.Type != ObjectType {
		panic(fmt.Sprintf("Member called on non-Object node (%s)", n.Type))
	}
	for i, f := range n.Fields {
		if f == name {
			return n.Values[i]
		}
	}
	return nil
}

// MemberNames returns the member names of an Object node in stable
// iteration order. It panics if n is not an Object node.
func (n *Node) MemberNames() []string {
	if n.Type != ObjectType {
		panic(fmt.Sprintf("MemberNames called on non-Object node (%s)", n.Type))
	}
	res := make([]string, len(n.Fields))
	copy(res, n.Fields)
	return res
}

// Elements returns the elements of an Array node. It panics if n is not an
// Array node.
func (n *Node) Elements() []*Node {
	if n.Type != ArrayType {
		panic(fmt.Sprintf("Elements called on non-Array node (%s)", n.Type))
	}
	return n.Values
}

// SetMember replaces, or inserts, a member on an Object node, re-parenting
// child. It panics if n is not an Object node.
func (n *Node) SetMember(name string, child *Node) {
	if n.Type != ObjectType {
		panic(fmt.Sprintf("SetMember called on non-Object node (%s)", n.Type))
	}
	child.Parent = n
	child.ParentField = name
	for i, f := range n.Fields {
		if f == name {
			n.Values[i] = child
			return
		}
	}
	child.ParentIndex = len(n.Fields)
	n.Fields = append(n.Fields, name)
	n.Values = append(n.Values, child)
}

// AppendElement appends child to an Array (or DerivedArray) node,
// re-parenting it. It panics if n is not an Array or DerivedArray node.
func (n *Node) AppendElement(child *Node) {
	if n.Type != ArrayType && n.Type != DerivedArrayType {
		panic(fmt.Sprintf("AppendElement called on non-Array node (%s)", n.Type))
	}
	child.Parent = n
	child.ParentIndex = len(n.Values)
	n.Values = append(n.Values, child)
}

// Clone returns a deep copy of n, detached from n's tree: the result's
// Parent is nil, and every descendant's Parent pointer is re-established
// to point within the clone.
func (n *Node) Clone() *Node {
	res := &Node{}
	n.cloneInto(res)
	res.Parent = nil
	return res
}

func (n *Node) cloneInto(dst *Node) {
	dst.Type = n.Type
	dst.ParentIndex = n.ParentIndex
	dst.ParentField = n.ParentField
	dst.Value = n.Value
	dst.Reference = n.Reference
	dst.Bases = append([]string(nil), n.Bases...)

	if n.Fields != nil {
		dst.Fields = append([]string(nil), n.Fields...)
	}
	if n.Values != nil {
		dst.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			c := &Node{}
			v.cloneInto(c)
			c.Parent = dst
			dst.Values[i] = c
		}
	}
	if n.Config != nil {
		c := &Node{}
		n.Config.cloneInto(c)
		c.Parent = dst
		dst.Config = c
	}
}

// Visit performs a pre/post-order traversal of n, calling f once before
// (isPost == false) and once after (isPost == true) visiting n's children.
// f's boolean return controls whether children are visited (ignored on the
// isPost == true call); a non-nil error aborts the traversal.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, child := range n.Values {
			if err := child.Visit(f); err != nil {
				return err
			}
		}
		if n.Config != nil {
			if err := n.Config.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// ReplaceContent overwrites n's variant content with a deep copy of src's,
// leaving n's own Parent, ParentIndex, and ParentField untouched. Used by
// the resolver to rewrite a node in place once its resolved value is known,
// without disturbing the position it occupies in its parent's tree.
func (n *Node) ReplaceContent(src *Node) {
	parent, idx, field := n.Parent, n.ParentIndex, n.ParentField

	n.Type = src.Type
	n.Value = src.Value
	n.Reference = src.Reference
	n.Bases = append([]string(nil), src.Bases...)
	n.Fields = nil
	n.Values = nil
	n.Config = nil

	if src.Fields != nil {
		n.Fields = append([]string(nil), src.Fields...)
	}
	if src.Values != nil {
		n.Values = make([]*Node, len(src.Values))
		for i, v := range src.Values {
			c := v.Clone()
			c.Parent = n
			c.ParentIndex = v.ParentIndex
			c.ParentField = v.ParentField
			n.Values[i] = c
		}
	}
	if src.Config != nil {
		n.Config = src.Config.Clone()
		n.Config.Parent = n
	}

	n.Parent = parent
	n.ParentIndex = idx
	n.ParentField = field
}

// IsFullyResolved reports whether n, and every node reachable from it,
// holds one of the four primitive variants (Null, Value, Array, Object).
func IsFullyResolved(n *Node) bool {
	fully := true
	_ = n.Visit(func(cur *Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		if cur.Type.IsUnresolved() {
			fully = false
			return false, nil
		}
		return true, nil
	})
	return fully
}
