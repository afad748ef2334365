// Package envsubst applies "${...}" substitution to the Value string
// leaves of a resolved configuration tree. Each "${...}" span's content is
// compiled and run as an expr-lang expression against an environment that
// exposes the include-time "env" member's variables by name, plus a
// getenv(name) function falling back to the process environment.
//
// This is a supplement to the core read pipeline, not part of it: a
// document containing no "${" syntax is untouched. Substitution runs once,
// after resolution and relocation, over the assembled tree's string
// leaves — it does not see, and cannot produce, NodeReference, DerivedArray,
// or DerivedObject nodes.
package envsubst
