package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/signadot/cascade/node"
)

// printNode writes n to w as indented, JSON-like text. c may be nil, in
// which case output carries no color codes.
func printNode(w io.Writer, n *node.Node, c *colors) error {
	return printIndented(w, n, c, "")
}

func printIndented(w io.Writer, n *node.Node, c *colors, indent string) error {
	switch n.Type {
	case node.NullType:
		_, err := fmt.Fprint(w, c.sprintType(node.NullType, "null"))
		return err
	case node.ValueType:
		_, err := fmt.Fprint(w, c.sprintType(node.ValueType, renderLeaf(n.Value)))
		return err
	case node.ArrayType:
		return printArray(w, n, c, indent)
	case node.ObjectType:
		return printObject(w, n, c, indent)
	default:
		_, err := fmt.Fprintf(w, "<%s>", n.Type)
		return err
	}
}

func renderLeaf(v any) string {
	if iface, ok := v.(interface{ ToAny() any }); ok {
		v = iface.ToAny()
	}
	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

func printArray(w io.Writer, n *node.Node, c *colors, indent string) error {
	elems := n.Elements()
	if len(elems) == 0 {
		_, err := fmt.Fprint(w, c.sprintPunct("[]"))
		return err
	}
	if _, err := fmt.Fprintln(w, c.sprintPunct("[")); err != nil {
		return err
	}
	inner := indent + "  "
	for i, e := range elems {
		if _, err := fmt.Fprint(w, inner); err != nil {
			return err
		}
		if err := printIndented(w, e, c, inner); err != nil {
			return err
		}
		if i != len(elems)-1 {
			fmt.Fprint(w, c.sprintPunct(","))
		}
		fmt.Fprintln(w)
	}
	_, err := fmt.Fprint(w, indent+c.sprintPunct("]"))
	return err
}

func printObject(w io.Writer, n *node.Node, c *colors, indent string) error {
	names := append([]string(nil), n.MemberNames()...)
	if len(names) == 0 {
		_, err := fmt.Fprint(w, c.sprintPunct("{}"))
		return err
	}
	sort.Strings(names)
	if _, err := fmt.Fprintln(w, c.sprintPunct("{")); err != nil {
		return err
	}
	inner := indent + "  "
	for i, name := range names {
		if _, err := fmt.Fprintf(w, "%s%s%s ", inner, c.sprintField(strconv.Quote(name)), c.sprintPunct(":")); err != nil {
			return err
		}
		if err := printIndented(w, n.Member(name), c, inner); err != nil {
			return err
		}
		if i != len(names)-1 {
			fmt.Fprint(w, c.sprintPunct(","))
		}
		fmt.Fprintln(w)
	}
	_, err := fmt.Fprint(w, indent+c.sprintPunct("}"))
	return err
}
