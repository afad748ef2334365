// Package cfgerr defines the sentinel error kinds produced by the cascade
// configuration pipeline and the wrapping conventions used to attach
// context (file paths, node paths, include indices) as errors propagate.
package cfgerr

import "errors"

var (
	// ErrInvalidPath means a sourceNode or destinationNode argument was
	// malformed or not absolute.
	ErrInvalidPath = errors.New("invalid node path")

	// ErrFileNotFound means a configuration or include file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrFileOpenFailure means a configuration or include file exists but
	// could not be read.
	ErrFileOpenFailure = errors.New("failed to open file")

	// ErrJSONParse means the underlying JSON decoder failed.
	ErrJSONParse = errors.New("JSON parse error")

	// ErrSchema means the document violates the configuration schema: the
	// root is not an object, "includes" is not an array, a DerivedObject
	// "base" member is missing or empty, decorator keys are malformed,
	// object members are duplicated, or a name is invalid.
	ErrSchema = errors.New("schema error")

	// ErrUnsupportedIncludeType means an includes[] entry named a "type"
	// this core does not implement.
	ErrUnsupportedIncludeType = errors.New("unsupported include type")

	// ErrResolutionUnresolved means the resolver exhausted its maximum
	// number of passes without converging to a fully resolved tree.
	ErrResolutionUnresolved = errors.New("could not fully resolve configuration")

	// ErrResolutionError means a structural failure occurred during
	// resolution, such as an unresolved node lacking a parent.
	ErrResolutionError = errors.New("resolution error")
)

// Is reports whether err wraps one of the sentinels in this package,
// delegating to errors.Is so callers can match with e.g. errors.Is(err,
// cfgerr.ErrFileNotFound).
func Is(err, target error) bool {
	return errors.Is(err, target)
}
