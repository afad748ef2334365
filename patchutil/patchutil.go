package patchutil

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/cascade/cfgerr"
	"github.com/signadot/cascade/cfgjson"
	"github.com/signadot/cascade/node"
	"github.com/signadot/cascade/resolve"
	"github.com/signadot/cascade/translate"
)

// DefaultMaxCycles is used when Apply is called with maxCycles <= 0.
const DefaultMaxCycles = 100

// Apply patches root, which must be fully resolved, with an RFC 6902
// JSON Patch document, and returns the result as a newly resolved
// configuration tree. root is not modified.
//
// A patch may reintroduce "&"/"#" decorated members (an "add" operation
// whose value object has such a key); the patched document is run back
// through translation and resolution so the result is, again, fully
// resolved.
func Apply(root *node.Node, patchDoc []byte, maxCycles int) (*node.Node, error) {
	if !node.IsFullyResolved(root) {
		return nil, fmt.Errorf("patchutil.Apply: %w: input tree is not fully resolved", cfgerr.ErrSchema)
	}

	before, err := json.Marshal(node.ToAny(root))
	if err != nil {
		return nil, fmt.Errorf("patchutil.Apply: marshaling tree: %w", err)
	}

	patch, err := jsonpatch.DecodePatch(patchDoc)
	if err != nil {
		return nil, fmt.Errorf("patchutil.Apply: decoding patch: %w", err)
	}
	after, err := patch.Apply(before)
	if err != nil {
		return nil, fmt.Errorf("patchutil.Apply: applying patch: %w", err)
	}

	v, err := (cfgjson.StdDecoder{}).Decode(after)
	if err != nil {
		return nil, fmt.Errorf("patchutil.Apply: %w", err)
	}
	result, err := translate.FromJSON(v, "/")
	if err != nil {
		return nil, fmt.Errorf("patchutil.Apply: %w", err)
	}

	if maxCycles <= 0 {
		maxCycles = DefaultMaxCycles
	}
	if err := resolve.Resolve(result, maxCycles); err != nil {
		return nil, fmt.Errorf("patchutil.Apply: %w", err)
	}
	return result, nil
}
