// Package difftool computes a structural diff between two configuration
// trees, intended for the CLI's "diff" subcommand — the core resolver
// never needs diffing.
//
// Object members are aligned by name using a Myers diff over each side's
// field-name sequence (so reordered-but-unchanged fields aren't reported
// as removed-then-added), grounded on the field-to-rune remapping trick
// of mapping each distinct name to a rune and diffing the resulting
// strings. Array elements are aligned by index. Where both sides hold a
// common field, the diff recurses; where either side lacks it, or the
// leaf values differ, the diff records both sides' values.
package difftool
