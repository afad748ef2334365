package resolve

import (
	"errors"
	"testing"

	"github.com/signadot/cascade/cfgerr"
	"github.com/signadot/cascade/node"
)

func mustResolve(t *testing.T, root *node.Node) {
	t.Helper()
	if err := Resolve(root, 100); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !node.IsFullyResolved(root) {
		t.Fatalf("tree not fully resolved after Resolve returned nil")
	}
}

func TestResolvePlainTreeIsAlreadyResolved(t *testing.T) {
	root := node.NewObject()
	root.SetMember("a", node.FromValue(int64(1)))
	mustResolve(t, root)
}

func TestResolveReference(t *testing.T) {
	root := node.NewObject()
	root.SetMember("a", node.FromValue(int64(1)))
	root.SetMember("b", node.FromReference("/a"))
	mustResolve(t, root)
	if root.Member("b").Value != int64(1) {
		t.Fatalf("b = %+v", root.Member("b"))
	}
}

func TestResolveRelativeReference(t *testing.T) {
	root := node.NewObject()
	inner := node.NewObject()
	inner.SetMember("a", node.FromValue("x"))
	inner.SetMember("b", node.FromReference("../inner/a"))
	root.SetMember("inner", inner)
	mustResolve(t, root)
	if root.Member("inner").Member("b").Value != "x" {
		t.Fatalf("b = %+v", root.Member("inner").Member("b"))
	}
}

func TestResolveChainOfReferences(t *testing.T) {
	root := node.NewObject()
	root.SetMember("a", node.FromValue(int64(42)))
	root.SetMember("b", node.FromReference("/a"))
	root.SetMember("c", node.FromReference("/b"))
	mustResolve(t, root)
	if root.Member("c").Value != int64(42) {
		t.Fatalf("c = %+v", root.Member("c"))
	}
}

func TestResolveUnresolvableCycle(t *testing.T) {
	root := node.NewObject()
	root.SetMember("a", node.FromReference("/b"))
	root.SetMember("b", node.FromReference("/a"))

	err := Resolve(root, 10)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, cfgerr.ErrResolutionUnresolved) {
		t.Fatalf("error = %v, want ErrResolutionUnresolved", err)
	}
}

func TestResolveReferenceWithoutParentIsError(t *testing.T) {
	root := node.FromReference("/a")
	err := Resolve(root, 10)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, cfgerr.ErrResolutionError) {
		t.Fatalf("error = %v, want ErrResolutionError", err)
	}
}

func TestResolveDerivedObject(t *testing.T) {
	root := node.NewObject()
	base1 := node.NewObject()
	base1.SetMember("x", node.FromValue(int64(1)))
	base2 := node.NewObject()
	base2.SetMember("y", node.FromValue(int64(2)))
	root.SetMember("base1", base1)
	root.SetMember("base2", base2)

	config := node.NewObject()
	config.SetMember("y", node.FromValue(int64(200)))
	root.SetMember("derived", node.NewDerivedObject([]string{"/base1", "/base2"}, config))

	mustResolve(t, root)
	derived := root.Member("derived")
	if derived.Type != node.ObjectType {
		t.Fatalf("type = %s", derived.Type)
	}
	if derived.Member("x").Value != int64(1) || derived.Member("y").Value != int64(200) {
		t.Fatalf("derived = x:%v y:%v", derived.Member("x").Value, derived.Member("y").Value)
	}
}

func TestResolveDerivedObjectMissingBaseStaysUnresolved(t *testing.T) {
	root := node.NewObject()
	config := node.NewObject()
	root.SetMember("derived", node.NewDerivedObject([]string{"/base"}, config))

	err := Resolve(root, 5)
	if !errors.Is(err, cfgerr.ErrResolutionUnresolved) {
		t.Fatalf("error = %v, want ErrResolutionUnresolved", err)
	}
}

func TestResolveDerivedObjectWithNullConfig(t *testing.T) {
	root := node.NewObject()
	base := node.NewObject()
	base.SetMember("x", node.FromValue(int64(1)))
	root.SetMember("base", base)
	root.SetMember("derived", node.NewDerivedObject([]string{"/base"}, nil))

	mustResolve(t, root)
	if root.Member("derived").Member("x").Value != int64(1) {
		t.Fatalf("derived = %+v", root.Member("derived"))
	}
}

func TestResolveDerivedObjectBaseNotObjectIsError(t *testing.T) {
	root := node.NewObject()
	root.SetMember("base", node.FromValue(int64(1)))
	root.SetMember("derived", node.NewDerivedObject([]string{"/base"}, nil))

	err := Resolve(root, 5)
	if !errors.Is(err, cfgerr.ErrResolutionError) {
		t.Fatalf("error = %v, want ErrResolutionError", err)
	}
}

func TestResolveDerivedArray(t *testing.T) {
	root := node.NewObject()
	root.SetMember("v", node.FromValue(int64(5)))
	root.SetMember("arr", node.NewDerivedArray(
		node.FromValue(int64(1)),
		node.FromReference("/v"),
		node.FromValue(map[string]any{"raw": true}),
	))

	mustResolve(t, root)
	arr := root.Member("arr")
	if arr.Type != node.ArrayType {
		t.Fatalf("type = %s", arr.Type)
	}
	if len(arr.Elements()) != 3 {
		t.Fatalf("len = %d", len(arr.Elements()))
	}
	if arr.Elements()[0].Value != int64(1) || arr.Elements()[1].Value != int64(5) {
		t.Fatalf("elements = %+v", arr.Elements())
	}
}

func TestResolveDerivedArrayElementUnresolvedStaysPending(t *testing.T) {
	root := node.NewObject()
	root.SetMember("arr", node.NewDerivedArray(node.FromReference("/missing")))

	err := Resolve(root, 5)
	if !errors.Is(err, cfgerr.ErrResolutionUnresolved) {
		t.Fatalf("error = %v, want ErrResolutionUnresolved", err)
	}
}

func TestResolvePanicsOnNonPositiveMaxCycles(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	_ = Resolve(node.Null(), 0)
}
