package include

import (
	"fmt"

	"github.com/signadot/cascade/cfgdebug"
	"github.com/signadot/cascade/cfgerr"
	"github.com/signadot/cascade/cfgfs"
	"github.com/signadot/cascade/cfgjson"
	"github.com/signadot/cascade/envsubst"
	"github.com/signadot/cascade/node"
	"github.com/signadot/cascade/relocate"
	"github.com/signadot/cascade/resolve"
	"github.com/signadot/cascade/translate"
)

// DefaultMaxCycles is the resolver's default pass budget, matching the
// original format's default.
const DefaultMaxCycles = 100

// defaultIncludeType is the only "type" value an includes[] entry may
// name; anything else is cfgerr.ErrUnsupportedIncludeType.
const defaultIncludeType = "CppConfigFramework"

// Loader reads configuration files and their includes, assembling,
// resolving, and relocating each one through the pipeline described in
// the package doc.
type Loader struct {
	FS        cfgfs.FileSystem
	JSON      cfgjson.Decoder
	MaxCycles int
}

// Read loads filePath (resolved against workingDir if relative), and
// returns its fully assembled, resolved, and relocated configuration
// tree, together with the "env" variables declared anywhere in its
// include chain (its own "env" member takes precedence over any that its
// includes declared).
func (l *Loader) Read(filePath, workingDir, sourceNode, destinationNode string) (*node.Node, envsubst.Vars, error) {
	if !node.IsAbsoluteNodePath(sourceNode) || !node.ValidateNodePath(sourceNode) {
		return nil, nil, fmt.Errorf("source node %q: %w", sourceNode, cfgerr.ErrInvalidPath)
	}
	if !node.IsAbsoluteNodePath(destinationNode) || !node.ValidateNodePath(destinationNode) {
		return nil, nil, fmt.Errorf("destination node %q: %w", destinationNode, cfgerr.ErrInvalidPath)
	}

	absPath := l.FS.AbsPath(workingDir, filePath)
	if !l.FS.Exists(absPath) {
		return nil, nil, fmt.Errorf("%s: %w", absPath, cfgerr.ErrFileNotFound)
	}
	data, err := l.FS.ReadFile(absPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w: %v", absPath, cfgerr.ErrFileOpenFailure, err)
	}

	root, err := l.JSON.Decode(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", absPath, err)
	}
	if root.Kind != cfgjson.ObjectKind {
		return nil, nil, fmt.Errorf("%s: %w: root JSON value must be an object", absPath, cfgerr.ErrSchema)
	}

	if cfgdebug.Include() {
		cfgdebug.Logf("include: reading %s (src=%s dst=%s)\n", absPath, sourceNode, destinationNode)
	}

	var includesMember, configMember, envMember *cfgjson.Value
	for i := range root.Object {
		m := &root.Object[i]
		switch m.Key {
		case "includes":
			includesMember = &m.Value
		case "config":
			configMember = &m.Value
		case "env":
			envMember = &m.Value
		}
	}

	dir := l.FS.Dir(absPath)
	accum := node.NewObject()
	vars := envsubst.Vars{}

	if includesMember != nil && includesMember.Kind != cfgjson.NullKind {
		if includesMember.Kind != cfgjson.ArrayKind {
			return nil, nil, fmt.Errorf("%s: %w: \"includes\" must be an array", absPath, cfgerr.ErrSchema)
		}
		for i, entry := range includesMember.Array {
			childTree, childVars, err := l.readInclude(absPath, dir, i, entry)
			if err != nil {
				return nil, nil, err
			}
			if !accum.ApplyObject(childTree) {
				return nil, nil, fmt.Errorf("%s: include[%d]: %w: result is not an object", absPath, i, cfgerr.ErrSchema)
			}
			for k, v := range childVars {
				vars[k] = v
			}
		}
	}

	if configMember != nil {
		configNode, err := readConfigMember(*configMember, absPath)
		if err != nil {
			return nil, nil, err
		}
		if configNode.Type != node.NullType {
			if !accum.ApplyObject(configNode) {
				return nil, nil, fmt.Errorf("%s: %w: \"config\" overlay failed", absPath, cfgerr.ErrSchema)
			}
		}
	}

	if envMember != nil && envMember.Kind != cfgjson.NullKind {
		ownVars, err := readEnvMember(*envMember, absPath)
		if err != nil {
			return nil, nil, err
		}
		for k, v := range ownVars {
			vars[k] = v
		}
	}

	maxCycles := l.MaxCycles
	if maxCycles <= 0 {
		maxCycles = DefaultMaxCycles
	}
	if err := resolve.Resolve(accum, maxCycles); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", absPath, err)
	}

	relocated, err := relocate.Relocate(accum, sourceNode, destinationNode)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", absPath, err)
	}

	return relocated, vars, nil
}

// readInclude processes a single includes[] entry, recursing into Read
// for its file_path.
func (l *Loader) readInclude(parentPath, workingDir string, index int, entry cfgjson.Value) (*node.Node, envsubst.Vars, error) {
	if entry.Kind != cfgjson.ObjectKind {
		return nil, nil, fmt.Errorf("%s: include[%d]: %w: must be an object", parentPath, index, cfgerr.ErrSchema)
	}

	typ := defaultIncludeType
	filePath := ""
	haveFilePath := false
	sourceNode := "/"
	destinationNode := "/"

	for _, m := range entry.Object {
		switch m.Key {
		case "type":
			if m.Value.Kind == cfgjson.NullKind {
				continue
			}
			if m.Value.Kind != cfgjson.StringKind {
				return nil, nil, fmt.Errorf("%s: include[%d]: %w: \"type\" must be a string", parentPath, index, cfgerr.ErrSchema)
			}
			typ = m.Value.String
		case "file_path":
			if m.Value.Kind != cfgjson.StringKind {
				return nil, nil, fmt.Errorf("%s: include[%d]: %w: \"file_path\" must be a string", parentPath, index, cfgerr.ErrSchema)
			}
			filePath = m.Value.String
			haveFilePath = true
		case "source_node":
			if m.Value.Kind != cfgjson.StringKind {
				return nil, nil, fmt.Errorf("%s: include[%d]: %w: \"source_node\" must be a string", parentPath, index, cfgerr.ErrSchema)
			}
			sourceNode = m.Value.String
		case "destination_node":
			if m.Value.Kind != cfgjson.StringKind {
				return nil, nil, fmt.Errorf("%s: include[%d]: %w: \"destination_node\" must be a string", parentPath, index, cfgerr.ErrSchema)
			}
			destinationNode = m.Value.String
		default:
			return nil, nil, fmt.Errorf("%s: include[%d]: %w: unrecognized member %q", parentPath, index, cfgerr.ErrSchema, m.Key)
		}
	}
	if !haveFilePath {
		return nil, nil, fmt.Errorf("%s: include[%d]: %w: missing \"file_path\"", parentPath, index, cfgerr.ErrSchema)
	}
	if typ != defaultIncludeType {
		return nil, nil, fmt.Errorf("%s: include[%d]: %q: %w", parentPath, index, typ, cfgerr.ErrUnsupportedIncludeType)
	}

	if cfgdebug.Include() {
		cfgdebug.Logf("include: [%d] %s src=%s dst=%s\n", index, filePath, sourceNode, destinationNode)
	}

	return l.Read(filePath, workingDir, sourceNode, destinationNode)
}

// readConfigMember translates the "config" member, which must be null or
// an object.
func readConfigMember(v cfgjson.Value, path string) (*node.Node, error) {
	switch v.Kind {
	case cfgjson.NullKind:
		return node.Null(), nil
	case cfgjson.ObjectKind:
		return translate.FromJSON(v, "/")
	default:
		return nil, fmt.Errorf("%s: %w: \"config\" must be null or an object", path, cfgerr.ErrSchema)
	}
}

// readEnvMember translates the "env" member into a flat string map: it
// must be an object whose values are all strings, with no decorator
// interpretation.
func readEnvMember(v cfgjson.Value, path string) (envsubst.Vars, error) {
	if v.Kind != cfgjson.ObjectKind {
		return nil, fmt.Errorf("%s: %w: \"env\" must be an object", path, cfgerr.ErrSchema)
	}
	vars := envsubst.Vars{}
	for _, m := range v.Object {
		if m.Value.Kind != cfgjson.StringKind {
			return nil, fmt.Errorf("%s: %w: \"env\" member %q must be a string", path, cfgerr.ErrSchema, m.Key)
		}
		vars[m.Key] = m.Value.String
	}
	return vars, nil
}
