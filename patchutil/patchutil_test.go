package patchutil

import (
	"errors"
	"testing"

	"github.com/signadot/cascade/cfgerr"
	"github.com/signadot/cascade/node"
)

func TestApplyAddMember(t *testing.T) {
	root := node.NewObject()
	root.SetMember("a", node.FromValue(int64(1)))

	out, err := Apply(root, []byte(`[{"op":"add","path":"/b","value":2}]`), 0)
	if err != nil {
		t.Fatal(err)
	}
	if out.Member("a").Value != int64(1) || out.Member("b").Value != int64(2) {
		t.Fatalf("out = a:%v b:%v", out.Member("a").Value, out.Member("b").Value)
	}
}

func TestApplyReplaceMember(t *testing.T) {
	root := node.NewObject()
	root.SetMember("a", node.FromValue(int64(1)))

	out, err := Apply(root, []byte(`[{"op":"replace","path":"/a","value":99}]`), 0)
	if err != nil {
		t.Fatal(err)
	}
	if out.Member("a").Value != int64(99) {
		t.Fatalf("a = %v", out.Member("a").Value)
	}
}

func TestApplyRemoveMember(t *testing.T) {
	root := node.NewObject()
	root.SetMember("a", node.FromValue(int64(1)))
	root.SetMember("b", node.FromValue(int64(2)))

	out, err := Apply(root, []byte(`[{"op":"remove","path":"/b"}]`), 0)
	if err != nil {
		t.Fatal(err)
	}
	if out.Member("b") != nil {
		t.Fatalf("b = %v, want removed", out.Member("b"))
	}
}

func TestApplyRejectsUnresolvedInput(t *testing.T) {
	root := node.NewObject()
	root.SetMember("a", node.FromReference("/b"))

	_, err := Apply(root, []byte(`[]`), 0)
	if !errors.Is(err, cfgerr.ErrSchema) {
		t.Fatalf("error = %v, want ErrSchema", err)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	root := node.NewObject()
	root.SetMember("a", node.FromValue(int64(1)))

	if _, err := Apply(root, []byte(`[{"op":"replace","path":"/a","value":99}]`), 0); err != nil {
		t.Fatal(err)
	}
	if root.Member("a").Value != int64(1) {
		t.Fatal("Apply mutated its input")
	}
}
