// Package node provides the configuration node model: a tagged-variant
// tree with parent back-pointers and UNIX-style path addressing.
//
// # Overview
//
// A Node is one element of a configuration tree. All nodes carry a Type
// that selects which of the remaining fields are meaningful:
//
//   - NullType: no payload.
//   - ValueType: a scalar or opaque JSON blob in the Value field.
//   - ArrayType: an ordered list of child nodes in Values.
//   - ObjectType: parallel Fields (member names) and Values (member
//     nodes), with no duplicate names.
//   - ReferenceType: an unresolved link to another node, named by the
//     node path in Reference.
//   - DerivedArrayType: like ArrayType, but elements may themselves be
//     unresolved (references or further derivations).
//   - DerivedObjectType: an object to be materialized by overlaying the
//     node paths in Bases, left to right, then applying Config.
//
// Every non-root node has exactly one parent, reachable through Parent; the
// parent link is a non-owning back-reference used only to resolve paths
// during reference resolution and must never be followed from a node that
// has been detached by Clone.
//
// # Node Paths
//
// Node paths are UNIX-style strings: an absolute path begins with "/";
// a relative path may start with one or more ".." segments followed by
// named segments. Use ParsePath to parse one and (*Node).AtPath to look
// one up relative to a node (".." ascends via Parent; a named segment
// descends into an Object member or, if numeric, an Array index).
//
// # Related Packages
//
//   - github.com/signadot/cascade/translate - turns JSON into Node trees
//   - github.com/signadot/cascade/resolve - rewrites Reference/Derived* nodes
//   - github.com/signadot/cascade/relocate - repositions a resolved subtree
package node
