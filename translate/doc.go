// Package translate turns a cfgjson.Value JSON tree into a node.Node
// configuration tree, interpreting the "&" and "#" decorator prefixes on
// object member keys along the way.
//
// Undecorated members translate ordinarily (recursively, by JSON kind).
// A "#name" member stores its JSON value opaquely as a single Value leaf,
// without interpretation, even if that value is itself an array or
// object. A "&name" member is in the reference family: a string value
// becomes a NodeReference, an array value becomes a DerivedArray (each
// element must be a single-member object named "element", "#element", or
// "&element"), and an object value becomes a DerivedObject (a required
// "base" member — one path or a non-empty array of paths — and an
// optional "config" member).
package translate
