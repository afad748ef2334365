// Package cascade is the public entry point for reading a layered,
// JSON-based configuration file into a fully resolved configuration
// tree. It wires together the cfgfs/cfgjson collaborators, the include
// loader, and the envsubst supplement into a single Reader.
package cascade
