// Package include implements the complete read pipeline for a single
// configuration file: decode its JSON, recursively load its "includes[]"
// entries (each through this same pipeline), overlay its own "config"
// member on top, resolve references and derivations, and relocate the
// result to its declared source/destination node paths.
//
// Each includes[] entry is read through the identical pipeline — decode,
// recurse into its own includes, resolve, relocate — using its own
// source_node/destination_node, before being overlaid onto the including
// file's accumulator. This means resolution happens independently within
// each included file's own node tree before that tree is merged into its
// parent; a reference inside an included file can only resolve against
// that file's own (and its includes') content, never against content the
// including file defines outside of it.
package include
