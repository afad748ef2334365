// Package patchutil applies an RFC 6902 JSON Patch document to a
// resolved configuration tree, by marshaling the tree to JSON, applying
// the patch with evanphx/json-patch, and re-decoding the result.
//
// Patches operate on plain JSON, not on the node model's decorator
// syntax: apply a patch after resolution, not before, since a
// NodeReference/DerivedArray/DerivedObject has no JSON Patch-addressable
// shape of its own.
package patchutil
