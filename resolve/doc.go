// Package resolve rewrites the three unresolved node variants —
// NodeReference, DerivedArray, DerivedObject — into one of the four
// primitive variants, repeating full-tree passes until either every node
// is primitive or a configured cycle budget is spent.
//
// A NodeReference resolves by looking up its path against its parent and,
// once found, replacing itself in place with a clone of the target. A
// DerivedArray resolves once every element does, at which point it
// becomes a plain Array. A DerivedObject resolves once every base path
// names a fully resolved node and its own config override (if any) is
// itself fully resolved; the result overlays the bases, left to right,
// and then the config override, onto a fresh Object.
//
// A node that can't yet resolve because a reference target doesn't exist
// *yet* in the tree is Unresolved, not an error: the next pass may find
// it once some other node has been rewritten. A node that can never
// resolve — a reference with no parent, a malformed path, a base that
// isn't an Object — is an Error, and aborts resolution outright rather
// than spinning through the remaining cycle budget.
package resolve
