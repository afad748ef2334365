package envsubst

import (
	"fmt"
	"os"
	"strconv"

	"github.com/expr-lang/expr"

	"github.com/signadot/cascade/cfgerr"
	"github.com/signadot/cascade/node"
)

// Error reports a substitution failure: an unparsable or failing "${...}"
// expression, or a result type that cannot be rendered back into a
// string. It always wraps cfgerr.ErrSchema, since a document whose
// substitutions fail to evaluate is treated as malformed, not as a
// resolver-level condition.
type Error struct {
	Expr    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("substituting %q: %s", e.Expr, e.Message)
}

func (e *Error) Unwrap() error { return cfgerr.ErrSchema }

// Vars is the include-time "env" map, made available as top-level
// identifiers inside "${...}" expressions.
type Vars map[string]string

func exprEnv(vars Vars) map[string]any {
	env := make(map[string]any, len(vars)+1)
	for k, v := range vars {
		env[k] = v
	}
	env["getenv"] = func(name string) string { return os.Getenv(name) }
	return env
}

// Substitute walks root in place, rewriting every Value node holding a
// string by expanding its "${...}" spans.
func Substitute(root *node.Node, vars Vars) error {
	env := exprEnv(vars)
	return root.Visit(func(n *node.Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		if n.Type != node.ValueType {
			return true, nil
		}
		s, ok := n.Value.(string)
		if !ok {
			return true, nil
		}
		out, err := expandString(s, env)
		if err != nil {
			return false, err
		}
		n.Value = out
		return true, nil
	})
}

// expandString scans v for "${...}" spans, evaluating each span's content
// as an expr-lang expression against env and substituting the rendered
// result. "\}" escapes a literal "}" inside a span, and "\\" a literal
// backslash; outside a span, both characters pass through unchanged. A
// span left unclosed at the end of the string is emitted literally.
func expandString(v string, env map[string]any) (string, error) {
	var out []byte
	var expr_ []byte
	inExpr := false
	exprStart := 0

	i := 0
	for i < len(v) {
		c := v[i]
		switch {
		case !inExpr && c == '$' && i+1 < len(v) && v[i+1] == '{':
			inExpr = true
			exprStart = i
			expr_ = expr_[:0]
			i += 2
		case inExpr && c == '\\' && i+1 < len(v):
			expr_ = append(expr_, v[i+1])
			i += 2
		case inExpr && c == '}':
			rendered, err := evalSpan(string(expr_), env)
			if err != nil {
				return "", err
			}
			out = append(out, rendered...)
			inExpr = false
			i++
		case inExpr:
			expr_ = append(expr_, c)
			i++
		default:
			out = append(out, c)
			i++
		}
	}
	if inExpr {
		// No closing "}" found: the "${" was not an expression after all.
		out = append(out, v[exprStart:]...)
	}
	return string(out), nil
}

func evalSpan(src string, env map[string]any) ([]byte, error) {
	program, err := expr.Compile(src, expr.Env(env))
	if err != nil {
		return nil, &Error{Expr: src, Message: err.Error()}
	}
	res, err := expr.Run(program, env)
	if err != nil {
		return nil, &Error{Expr: src, Message: err.Error()}
	}
	return renderValue(src, res)
}

func renderValue(src string, v any) ([]byte, error) {
	switch x := v.(type) {
	case string:
		return []byte(x), nil
	case bool:
		return []byte(strconv.FormatBool(x)), nil
	case int:
		return []byte(strconv.Itoa(x)), nil
	case int64:
		return []byte(strconv.FormatInt(x, 10)), nil
	case float64:
		return []byte(strconv.FormatFloat(x, 'f', -1, 64)), nil
	case nil:
		return nil, nil
	default:
		return nil, &Error{Expr: src, Message: fmt.Sprintf("expression result has unsupported type %T", x)}
	}
}
