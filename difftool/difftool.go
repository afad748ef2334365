package difftool

import (
	"reflect"
	"strconv"

	diffmatchpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/cascade/node"
)

// Diff reports the structural differences between from and to, as an
// Object node whose members name the changed fields (or, for arrays,
// the changed indices as decimal strings). A changed leaf is reported as
// {"from": <value or null>, "to": <value or null>}; a changed Object or
// Array field recurses instead. Diff returns nil when from and to are
// structurally identical.
func Diff(from, to *node.Node) *node.Node {
	switch {
	case from.Type == node.ObjectType && to.Type == node.ObjectType:
		return diffObject(from, to)
	case from.Type == node.ArrayType && to.Type == node.ArrayType:
		return diffArray(from, to)
	case equal(from, to):
		return nil
	default:
		return wrapChange(from, to)
	}
}

func wrapChange(from, to *node.Node) *node.Node {
	res := node.NewObject()
	res.SetMember("from", from.Clone())
	res.SetMember("to", to.Clone())
	return res
}

// diffObject aligns from's and to's member names with a Myers diff over
// each side's field-name sequence, mapping each distinct name to a rune
// so diffmatchpatch's string diff can be reused for name alignment.
func diffObject(from, to *node.Node) *node.Node {
	runeOf := map[string]rune{}
	nameOf := map[rune]string{}
	fromRunes := internFields(from.MemberNames(), runeOf, nameOf)
	toRunes := internFields(to.MemberNames(), runeOf, nameOf)

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMainRunes(fromRunes, toRunes, false)

	res := node.NewObject()
	var order []string
	seen := map[string]bool{}
	record := func(name string, v *node.Node) {
		if !seen[name] {
			seen[name] = true
			order = append(order, name)
		}
		res.SetMember(name, v)
	}

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for _, r := range d.Text {
				name := nameOf[r]
				if to.Member(name) != nil {
					continue // moved, not removed: compared at its insert
				}
				record(name, wrapChange(from.Member(name), node.Null()))
			}
		case diffmatchpatch.DiffInsert:
			for _, r := range d.Text {
				name := nameOf[r]
				if fv := from.Member(name); fv != nil {
					if sub := Diff(fv, to.Member(name)); sub != nil {
						record(name, sub)
					}
					continue
				}
				record(name, wrapChange(node.Null(), to.Member(name)))
			}
		case diffmatchpatch.DiffEqual:
			for _, r := range d.Text {
				name := nameOf[r]
				if sub := Diff(from.Member(name), to.Member(name)); sub != nil {
					record(name, sub)
				}
			}
		}
	}
	if len(order) == 0 {
		return nil
	}
	return res
}

func internFields(names []string, runeOf map[string]rune, nameOf map[rune]string) []rune {
	res := make([]rune, len(names))
	for i, name := range names {
		r, ok := runeOf[name]
		if !ok {
			r = rune(len(runeOf))
			runeOf[name] = r
			nameOf[r] = name
		}
		res[i] = r
	}
	return res
}

func diffArray(from, to *node.Node) *node.Node {
	res := node.NewObject()
	n := len(from.Elements())
	if len(to.Elements()) > n {
		n = len(to.Elements())
	}
	changed := false
	for i := 0; i < n; i++ {
		var fv, tv *node.Node
		if i < len(from.Elements()) {
			fv = from.Elements()[i]
		} else {
			fv = node.Null()
		}
		if i < len(to.Elements()) {
			tv = to.Elements()[i]
		} else {
			tv = node.Null()
		}
		if sub := Diff(fv, tv); sub != nil {
			res.SetMember(strconv.Itoa(i), sub)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return res
}

// equal reports whether from and to carry the same value, recursively.
func equal(from, to *node.Node) bool {
	if from.Type != to.Type {
		return false
	}
	switch from.Type {
	case node.NullType:
		return true
	case node.ValueType:
		return reflect.DeepEqual(from.Value, to.Value)
	case node.ReferenceType:
		return from.Reference == to.Reference
	case node.ArrayType:
		if len(from.Elements()) != len(to.Elements()) {
			return false
		}
		for i := range from.Elements() {
			if !equal(from.Elements()[i], to.Elements()[i]) {
				return false
			}
		}
		return true
	case node.ObjectType:
		fromNames, toNames := from.MemberNames(), to.MemberNames()
		if len(fromNames) != len(toNames) {
			return false
		}
		for _, name := range fromNames {
			tv := to.Member(name)
			if tv == nil || !equal(from.Member(name), tv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
