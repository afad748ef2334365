// Package relocate implements the final step of the read pipeline:
// extracting the subtree found at a source node path out of a fully
// resolved configuration tree, and re-wrapping it under a destination
// node path.
//
// Both paths default to "/", the identity transform. A non-root source
// path extracts a subtree and discards the rest. A non-root destination
// path builds the chain of empty Object nodes needed to hold the
// extracted subtree at that path, regardless of whether the source was
// "/" or something deeper.
package relocate
