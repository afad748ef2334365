package cascade

import (
	"fmt"

	"github.com/signadot/cascade/cfgfs"
	"github.com/signadot/cascade/cfgjson"
	"github.com/signadot/cascade/envsubst"
	"github.com/signadot/cascade/include"
	"github.com/signadot/cascade/node"
)

// Reader reads configuration files through the full cascade pipeline:
// decode, include, resolve, relocate, and (as a supplement) "${...}"
// environment substitution.
type Reader struct {
	MaxCycles int
	FS        cfgfs.FileSystem
	JSON      cfgjson.Decoder
}

// Option configures a Reader built by NewReader.
type Option func(*Reader)

// WithMaxCycles overrides the resolver's pass budget (default 100). It
// panics if n is not positive, matching the resolver's own invariant.
func WithMaxCycles(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("cascade.WithMaxCycles: n must be positive, got %d", n))
	}
	return func(r *Reader) { r.MaxCycles = n }
}

// WithFileSystem overrides the file system collaborator (default: the OS
// file system).
func WithFileSystem(fs cfgfs.FileSystem) Option {
	return func(r *Reader) { r.FS = fs }
}

// WithJSONDecoder overrides the JSON decoder (default: cfgjson.StdDecoder).
func WithJSONDecoder(dec cfgjson.Decoder) Option {
	return func(r *Reader) { r.JSON = dec }
}

// NewReader returns a Reader configured with include.DefaultMaxCycles,
// the OS file system, and the standard JSON decoder, as overridden by
// opts.
func NewReader(opts ...Option) *Reader {
	r := &Reader{
		MaxCycles: include.DefaultMaxCycles,
		FS:        cfgfs.OS{},
		JSON:      cfgjson.StdDecoder{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read loads filePath (resolved against workingDir if relative) through
// the full pipeline described in the package doc, and returns the
// resulting configuration tree rooted at destinationNode.
//
// sourceNode and destinationNode must be absolute node paths; "/" for
// either is the identity (the whole tree; the new root).
func (r *Reader) Read(filePath, workingDir, sourceNode, destinationNode string) (*node.Node, error) {
	l := &include.Loader{FS: r.FS, JSON: r.JSON, MaxCycles: r.MaxCycles}
	tree, vars, err := l.Read(filePath, workingDir, sourceNode, destinationNode)
	if err != nil {
		return nil, err
	}
	if err := envsubst.Substitute(tree, vars); err != nil {
		return nil, err
	}
	return tree, nil
}

// Read is a convenience wrapper around NewReader().Read.
func Read(filePath, workingDir, sourceNode, destinationNode string) (*node.Node, error) {
	return NewReader().Read(filePath, workingDir, sourceNode, destinationNode)
}
