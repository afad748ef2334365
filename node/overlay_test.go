package node

import "testing"

func TestApplyObjectInsertsMissing(t *testing.T) {
	dst := NewObject()
	dst.SetMember("a", FromValue(int64(1)))
	src := NewObject()
	src.SetMember("b", FromValue(int64(2)))
	if !dst.ApplyObject(src) {
		t.Fatal("ApplyObject returned false")
	}
	if dst.Member("a").Value != int64(1) || dst.Member("b").Value != int64(2) {
		t.Fatalf("unexpected result: a=%v b=%v", dst.Member("a"), dst.Member("b"))
	}
}

func TestApplyObjectRecursesIntoObjects(t *testing.T) {
	dst := NewObject()
	dstChild := NewObject()
	dstChild.SetMember("x", FromValue(int64(1)))
	dstChild.SetMember("y", FromValue(int64(2)))
	dst.SetMember("child", dstChild)

	src := NewObject()
	srcChild := NewObject()
	srcChild.SetMember("y", FromValue(int64(20)))
	src.SetMember("child", srcChild)

	dst.ApplyObject(src)
	child := dst.Member("child")
	if child.Member("x").Value != int64(1) {
		t.Fatalf("expected surviving x=1, got %v", child.Member("x"))
	}
	if child.Member("y").Value != int64(20) {
		t.Fatalf("expected overridden y=20, got %v", child.Member("y"))
	}
}

func TestApplyObjectRightBiasedNonObjectReplace(t *testing.T) {
	dst := NewObject()
	dst.SetMember("a", NewArray())
	src := NewObject()
	src.SetMember("a", FromValue("scalar"))
	dst.ApplyObject(src)
	if dst.Member("a").Type != ValueType || dst.Member("a").Value != "scalar" {
		t.Fatalf("expected a replaced by scalar, got %v", dst.Member("a"))
	}
}

func TestApplyObjectFailsOnNonObject(t *testing.T) {
	dst := NewObject()
	src := FromValue(int64(1))
	if dst.ApplyObject(src) {
		t.Fatal("expected ApplyObject to fail on non-Object other")
	}
}

func TestApplyObjectIdempotent(t *testing.T) {
	x := NewObject()
	x.SetMember("a", FromValue(int64(1)))
	inner := NewObject()
	inner.SetMember("b", FromValue(int64(2)))
	x.SetMember("inner", inner)

	before := x.Clone()
	x.ApplyObject(before)

	if x.Member("a").Value != int64(1) {
		t.Fatalf("idempotence violated for a")
	}
	got := x.Member("inner").Member("b").Value
	if got != int64(2) {
		t.Fatalf("idempotence violated for inner.b: %v", got)
	}
}
