package relocate

import (
	"fmt"

	"github.com/signadot/cascade/cfgdebug"
	"github.com/signadot/cascade/cfgerr"
	"github.com/signadot/cascade/node"
)

// Error reports a relocation failure: a malformed source or destination
// path, or a source path that does not resolve against the tree. It
// always wraps cfgerr.ErrInvalidPath.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return cfgerr.ErrInvalidPath }

// Relocate extracts the subtree at sourceNode from config and re-roots it
// under destinationNode, returning a new, detached tree. config is not
// modified; the returned tree shares no nodes with it.
//
// sourceNode and destinationNode must be syntactically valid, absolute
// node paths. "/" for either is the identity: "/" as the source means
// "the whole tree", and "/" as the destination means "the extracted
// subtree becomes the new root".
func Relocate(config *node.Node, sourceNode, destinationNode string) (*node.Node, error) {
	if sourceNode == "/" && destinationNode == "/" {
		return config.Clone(), nil
	}

	srcPath, err := node.ParsePath(sourceNode)
	if err != nil || !srcPath.Absolute {
		return nil, &Error{Message: fmt.Sprintf("source node %q is not a valid absolute node path", sourceNode)}
	}
	dstPath, err := node.ParsePath(destinationNode)
	if err != nil || !dstPath.Absolute {
		return nil, &Error{Message: fmt.Sprintf("destination node %q is not a valid absolute node path", destinationNode)}
	}
	for _, name := range dstPath.Segments {
		if !node.ValidateNodeName(name) {
			return nil, &Error{Message: fmt.Sprintf("destination node %q: %q is not a valid member name", destinationNode, name)}
		}
	}

	var source *node.Node
	if sourceNode == "/" {
		source = config.Clone()
	} else {
		found := config.AtPath(srcPath)
		if found == nil {
			return nil, &Error{Message: fmt.Sprintf("source node %q not found", sourceNode)}
		}
		source = found.Clone()
	}

	if cfgdebug.Relocate() {
		cfgdebug.Logf("relocate: %s -> %s\n", sourceNode, destinationNode)
	}

	if destinationNode == "/" {
		return source, nil
	}

	root := node.NewObject()
	cur := root
	for i, name := range dstPath.Segments {
		if i == len(dstPath.Segments)-1 {
			cur.SetMember(name, source)
		} else {
			next := node.NewObject()
			cur.SetMember(name, next)
			cur = next
		}
	}
	return root, nil
}
