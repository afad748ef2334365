package relocate

import (
	"testing"

	"github.com/signadot/cascade/node"
)

func TestRelocateIdentity(t *testing.T) {
	root := node.NewObject()
	root.SetMember("a", node.FromValue(int64(1)))

	got, err := Relocate(root, "/", "/")
	if err != nil {
		t.Fatal(err)
	}
	if got.Member("a").Value != int64(1) {
		t.Fatalf("a = %+v", got.Member("a"))
	}
	if got == root {
		t.Fatal("expected a detached clone, not the same node")
	}
}

func TestRelocateSourceOnly(t *testing.T) {
	root := node.NewObject()
	inner := node.NewObject()
	inner.SetMember("x", node.FromValue(int64(1)))
	root.SetMember("nested", inner)

	got, err := Relocate(root, "/nested", "/")
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != node.ObjectType || got.Member("x").Value != int64(1) {
		t.Fatalf("got = %+v", got)
	}
}

func TestRelocateDestinationOnly(t *testing.T) {
	root := node.NewObject()
	root.SetMember("a", node.FromValue(int64(1)))

	got, err := Relocate(root, "/", "/wrapped/deep")
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != node.ObjectType {
		t.Fatalf("type = %s", got.Type)
	}
	wrapped := got.Member("wrapped")
	if wrapped == nil || wrapped.Type != node.ObjectType {
		t.Fatalf("wrapped = %+v", wrapped)
	}
	deep := wrapped.Member("deep")
	if deep == nil || deep.Member("a").Value != int64(1) {
		t.Fatalf("deep = %+v", deep)
	}
}

func TestRelocateBoth(t *testing.T) {
	root := node.NewObject()
	inner := node.NewObject()
	inner.SetMember("x", node.FromValue("hi"))
	root.SetMember("src", inner)

	got, err := Relocate(root, "/src", "/dst")
	if err != nil {
		t.Fatal(err)
	}
	dst := got.Member("dst")
	if dst == nil || dst.Member("x").Value != "hi" {
		t.Fatalf("dst = %+v", dst)
	}
}

func TestRelocateSourceNotFound(t *testing.T) {
	root := node.NewObject()
	if _, err := Relocate(root, "/missing", "/"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestRelocateInvalidPath(t *testing.T) {
	root := node.NewObject()
	if _, err := Relocate(root, "relative", "/"); err == nil {
		t.Fatal("expected an error for a non-absolute source path")
	}
}

func TestRelocateDoesNotMutateInput(t *testing.T) {
	root := node.NewObject()
	inner := node.NewObject()
	inner.SetMember("x", node.FromValue(int64(1)))
	root.SetMember("src", inner)

	got, err := Relocate(root, "/src", "/dst")
	if err != nil {
		t.Fatal(err)
	}
	got.Member("dst").Member("x").Value = int64(999)
	if root.Member("src").Member("x").Value != int64(1) {
		t.Fatal("Relocate's result shares state with its input")
	}
}
