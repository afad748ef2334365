package node

import (
	"strconv"
	"strings"
)

// Path is a parsed UNIX-style node path: a sequence of ".." ascents
// followed by a sequence of named segments, absolute or relative.
type Path struct {
	Absolute bool
	Ups      int      // number of leading ".." segments (relative paths only)
	Segments []string // named segments, in order, after the Ups
}

// isNameByte reports whether b may appear in a node name.
func isNameByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// ValidateNodeName reports whether s is a syntactically valid node name: a
// non-empty string of letters, digits, and underscores that does not start
// with a digit, is not "..", and contains neither "/" nor the reserved
// decorator characters "&" and "#".
func ValidateNodeName(s string) bool {
	if s == "" || s == ".." {
		return false
	}
	if s[0] >= '0' && s[0] <= '9' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isNameByte(s[i]) {
			return false
		}
	}
	return true
}

// IsAbsoluteNodePath reports whether s begins with "/".
func IsAbsoluteNodePath(s string) bool {
	return strings.HasPrefix(s, "/")
}

// ValidateNodePath reports whether s is a syntactically well-formed node
// path: "/" alone, an absolute path of "/"-separated segments, or a
// relative path of zero or more leading ".." segments followed by zero or
// more segments. Each segment is a valid name or a decimal array index.
func ValidateNodePath(s string) bool {
	_, err := ParsePath(s)
	return err == nil
}

// isIndexSegment reports whether s is a decimal array index: one or more
// ASCII digits.
func isIndexSegment(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParsePath parses a UNIX-style node path string. A segment after the
// leading ".." segments is either a valid node name or a decimal array
// index.
func ParsePath(s string) (*Path, error) {
	if s == "" {
		return nil, &PathError{Path: s, Reason: "empty path"}
	}
	p := &Path{}
	rest := s
	if strings.HasPrefix(rest, "/") {
		p.Absolute = true
		rest = strings.TrimPrefix(rest, "/")
		if rest == "" {
			return p, nil
		}
	}
	segs := strings.Split(rest, "/")
	i := 0
	if !p.Absolute {
		for i < len(segs) && segs[i] == ".." {
			p.Ups++
			i++
		}
	}
	for ; i < len(segs); i++ {
		name := segs[i]
		if name == ".." {
			return nil, &PathError{Path: s, Reason: "\"..\" may only appear as a leading segment of a relative path"}
		}
		if !ValidateNodeName(name) && !isIndexSegment(name) {
			return nil, &PathError{Path: s, Reason: "invalid node name " + strconv.Quote(name)}
		}
		p.Segments = append(p.Segments, name)
	}
	return p, nil
}

// PathError reports a malformed node path.
type PathError struct {
	Path   string
	Reason string
}

func (e *PathError) Error() string {
	return "invalid node path " + strconv.Quote(e.Path) + ": " + e.Reason
}

// AppendNodeToPath concatenates base and segment with a single "/"
// separator, normalizing any doubled slash that would otherwise result.
func AppendNodeToPath(base, segment string) string {
	switch {
	case base == "":
		return segment
	case strings.HasSuffix(base, "/"):
		return base + segment
	default:
		return base + "/" + segment
	}
}

// AbsoluteNodePath returns the absolute path from the root of n's tree to
// n.
func (n *Node) AbsoluteNodePath() string {
	if n.Parent == nil {
		return "/"
	}
	segs := n.pathSegments(nil)
	return "/" + strings.Join(segs, "/")
}

func (n *Node) pathSegments(acc []string) []string {
	if n.Parent == nil {
		return acc
	}
	var seg string
	switch n.Parent.Type {
	case ObjectType, DerivedObjectType:
		seg = n.ParentField
	case ArrayType, DerivedArrayType:
		seg = strconv.Itoa(n.ParentIndex)
	default:
		seg = n.ParentField
	}
	acc = n.Parent.pathSegments(acc)
	return append(acc, seg)
}

// AtPath looks up the node at p relative to n (for a relative path) or
// relative to n's tree root (for an absolute path). It returns nil,
// without an error, if the path does not resolve: an unknown member, a
// non-numeric index against an array, descent into a non-container, or a
// ".." ascent past the root.
func (n *Node) AtPath(p *Path) *Node {
	cur := n
	if p.Absolute {
		cur = n.Root()
	}
	for i := 0; i < p.Ups; i++ {
		if cur.Parent == nil {
			return nil
		}
		cur = cur.Parent
	}
	for _, seg := range p.Segments {
		switch cur.Type {
		case ObjectType:
			next := cur.Member(seg)
			if next == nil {
				return nil
			}
			cur = next
		case ArrayType, DerivedArrayType:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(cur.Values) {
				return nil
			}
			cur = cur.Values[idx]
		default:
			return nil
		}
	}
	return cur
}

// AtPathString is a convenience wrapper that parses s before calling
// AtPath. A malformed path returns (nil, err); an unresolved (but
// syntactically valid) path returns (nil, nil).
func (n *Node) AtPathString(s string) (*Node, error) {
	p, err := ParsePath(s)
	if err != nil {
		return nil, err
	}
	return n.AtPath(p), nil
}
