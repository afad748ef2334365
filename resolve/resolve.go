package resolve

import (
	"fmt"

	"github.com/signadot/cascade/cfgdebug"
	"github.com/signadot/cascade/cfgerr"
	"github.com/signadot/cascade/node"
)

// Error reports a structural failure during resolution: an unresolved node
// lacking a parent, a malformed reference or base path, or a base that
// doesn't name an Object. It always wraps cfgerr.ErrResolutionError.
type Error struct {
	Path    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("resolving %s: %s", e.Path, e.Message)
}

func (e *Error) Unwrap() error {
	return cfgerr.ErrResolutionError
}

func errf(n *node.Node, format string, args ...any) error {
	return &Error{Path: n.AbsoluteNodePath(), Message: fmt.Sprintf(format, args...)}
}

// outcome is the per-node result of one resolution pass, distinct from the
// error return: a node that simply can't resolve yet is Unresolved, not an
// error.
type outcome int

const (
	resolved outcome = iota
	unresolved
)

// Resolve repeatedly walks root, rewriting NodeReference, DerivedArray, and
// DerivedObject nodes into primitive variants, until the whole tree is
// fully resolved or maxCycles passes have been spent. maxCycles must be
// positive; zero or negative is a caller error and panics, matching the
// package's treatment of a misconfigured budget as a programming mistake
// rather than a runtime condition.
func Resolve(root *node.Node, maxCycles int) error {
	if maxCycles <= 0 {
		panic(fmt.Sprintf("resolve.Resolve: maxCycles must be positive, got %d", maxCycles))
	}

	for pass := 0; pass < maxCycles; pass++ {
		o, err := resolveNode(root)
		if err != nil {
			return err
		}
		if o == resolved {
			if cfgdebug.Resolve() {
				cfgdebug.Logf("resolve: converged after %d pass(es)\n", pass+1)
			}
			return nil
		}
		if cfgdebug.Resolve() {
			cfgdebug.Logf("resolve: pass %d left the tree unresolved\n", pass+1)
		}
	}
	return fmt.Errorf("after %d cycles: %w", maxCycles, cfgerr.ErrResolutionUnresolved)
}

func resolveNode(n *node.Node) (outcome, error) {
	switch n.Type {
	case node.NullType, node.ValueType:
		return resolved, nil
	case node.ArrayType, node.ObjectType:
		return resolveChildren(n)
	case node.ReferenceType:
		return resolveReference(n)
	case node.DerivedArrayType:
		return resolveDerivedArray(n)
	case node.DerivedObjectType:
		return resolveDerivedObject(n)
	default:
		return unresolved, errf(n, "unsupported node type %s", n.Type)
	}
}

// resolveChildren resolves every child of an Array or Object node,
// visiting all of them even once one comes back Unresolved, so a single
// pass makes as much progress as possible; an Error from any child aborts
// immediately.
func resolveChildren(n *node.Node) (outcome, error) {
	result := resolved
	for _, child := range n.Values {
		o, err := resolveNode(child)
		if err != nil {
			return unresolved, err
		}
		if o == unresolved {
			result = unresolved
		}
	}
	return result, nil
}

func resolveReference(n *node.Node) (outcome, error) {
	parent := n.Parent
	if parent == nil {
		return unresolved, errf(n, "reference node has no parent")
	}
	path, err := node.ParsePath(n.Reference)
	if err != nil {
		return unresolved, errf(n, "malformed reference path %q: %v", n.Reference, err)
	}
	target := parent.AtPath(path)
	if target == nil {
		return unresolved, nil
	}
	if cfgdebug.Resolve() {
		cfgdebug.Logf("resolve: %s -> %s resolved\n", n.AbsoluteNodePath(), n.Reference)
	}
	n.ReplaceContent(target)
	if node.IsFullyResolved(n) {
		return resolved, nil
	}
	return unresolved, nil
}

func resolveDerivedArray(n *node.Node) (outcome, error) {
	parent := n.Parent
	if parent == nil {
		return unresolved, errf(n, "derived array node has no parent")
	}

	result := resolved
	for _, el := range n.Values {
		o, err := resolveNode(el)
		if err != nil {
			return unresolved, err
		}
		if o == unresolved {
			result = unresolved
		}
	}
	if result != resolved {
		return result, nil
	}

	n.Type = node.ArrayType
	return resolved, nil
}

func resolveDerivedObject(n *node.Node) (outcome, error) {
	parent := n.Parent
	if parent == nil {
		return unresolved, errf(n, "derived object node has no parent")
	}

	accum := node.NewObject()
	for _, base := range n.Bases {
		path, err := node.ParsePath(base)
		if err != nil {
			return unresolved, errf(n, "malformed base path %q: %v", base, err)
		}
		baseNode := parent.AtPath(path)
		if baseNode == nil {
			return unresolved, nil
		}
		if !node.IsFullyResolved(baseNode) {
			return unresolved, nil
		}
		if !accum.ApplyObject(baseNode) {
			return unresolved, errf(n, "base %q does not name an object", base)
		}
	}

	if !node.IsFullyResolved(n.Config) {
		configOverride := n.Config.Clone()
		configOverride.Parent = parent
		o, err := resolveNode(configOverride)
		configOverride.Parent = n
		n.Config = configOverride
		if err != nil {
			return unresolved, err
		}
		if o == unresolved {
			return unresolved, nil
		}
	}

	if n.Config.Type != node.NullType {
		if !accum.ApplyObject(n.Config) {
			return unresolved, errf(n, "config override does not name an object")
		}
	}

	n.ReplaceContent(accum)
	return resolved, nil
}
