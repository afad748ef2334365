package node

// ApplyObject overlays other onto n: for every member of other, if n lacks
// that member it is deep-copied in; if both sides hold that member as an
// Object, the overlay recurses; otherwise n's member is replaced wholesale
// by a deep copy of other's. ApplyObject reports false, performing no
// mutation, unless both n and other are Object nodes.
func (n *Node) ApplyObject(other *Node) bool {
	if n.Type != ObjectType || other.Type != ObjectType {
		return false
	}
	for _, name := range other.Fields {
		ov := other.Member(name)
		nv := n.Member(name)
		switch {
		case nv == nil:
			n.SetMember(name, ov.Clone())
		case nv.Type == ObjectType && ov.Type == ObjectType:
			nv.ApplyObject(ov)
		default:
			n.SetMember(name, ov.Clone())
		}
	}
	return true
}
