// Package cfgjson states the JSON-tokenization collaborator interface the
// cascade pipeline depends on, and supplies a default encoding/json-backed
// implementation. spec.md scopes JSON tokenization out of the core as an
// externally supplied service: "supplies a value-tree of six primitives
// ... and a parse-error location on failure."
package cfgjson
