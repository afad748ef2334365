package cfgfs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOSReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.json")
	if err := os.WriteFile(path, []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := (OS{}).ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "{}" {
		t.Fatalf("got %q", got)
	}
}

func TestOSExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.json")
	if (OS{}).Exists(path) {
		t.Fatal("expected false before write")
	}
	if err := os.WriteFile(path, []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}
	if !(OS{}).Exists(path) {
		t.Fatal("expected true after write")
	}
}

func TestOSAbsPath(t *testing.T) {
	got := (OS{}).AbsPath("/work/dir", "rel/a.json")
	want := filepath.Clean("/work/dir/rel/a.json")
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	got = (OS{}).AbsPath("/work/dir", "/abs/a.json")
	if got != "/abs/a.json" {
		t.Fatalf("got %q, want /abs/a.json", got)
	}
}

func TestOSDir(t *testing.T) {
	got := (OS{}).Dir("/a/b/c.json")
	if got != "/a/b" {
		t.Fatalf("got %q", got)
	}
}
