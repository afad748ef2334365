package node

import "testing"

func TestParsePath(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"root", "/", false},
		{"absolute", "/a/b/c", false},
		{"relative", "a/b", false},
		{"relative ups", "../../a", false},
		{"ups only", "..", false},
		{"up in middle invalid", "a/../b", true},
		{"empty", "", true},
		{"decorator char", "/a&b", true},
		{"leading digit", "/1abc", true},
		{"empty segment", "/a//b", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePath(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePath(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
		})
	}
}

func TestValidateNodeName(t *testing.T) {
	for _, tt := range []struct {
		name string
		ok   bool
	}{
		{"abc", true},
		{"_abc", true},
		{"abc123", true},
		{"1abc", false},
		{"", false},
		{"..", false},
		{"a/b", false},
		{"a&b", false},
		{"a#b", false},
	} {
		if got := ValidateNodeName(tt.name); got != tt.ok {
			t.Errorf("ValidateNodeName(%q) = %v, want %v", tt.name, got, tt.ok)
		}
	}
}

func TestAtPath(t *testing.T) {
	root := NewObject()
	a := NewObject()
	root.SetMember("a", a)
	a.SetMember("x", FromValue(int64(1)))
	arr := NewArray()
	root.SetMember("arr", arr)
	arr.AppendElement(FromValue("zero"))
	arr.AppendElement(FromValue("one"))

	got, err := root.AtPathString("/a/x")
	if err != nil || got == nil {
		t.Fatalf("AtPathString(/a/x) = %v, %v", got, err)
	}
	if got.Value != int64(1) {
		t.Errorf("got value %v", got.Value)
	}

	got, err = root.AtPathString("/arr/1")
	if err != nil || got == nil || got.Value != "one" {
		t.Fatalf("AtPathString(/arr/1) = %v, %v", got, err)
	}

	got, err = root.AtPathString("/nope")
	if err != nil || got != nil {
		t.Fatalf("AtPathString(/nope) should be (nil, nil), got (%v, %v)", got, err)
	}

	got, err = a.AtPathString("../arr/0")
	if err != nil || got == nil || got.Value != "zero" {
		t.Fatalf("AtPathString(../arr/0) = %v, %v", got, err)
	}

	// ".." at root fails (returns nil, not error).
	got, err = root.AtPathString("..")
	if err != nil || got != nil {
		t.Fatalf("AtPathString('..') at root should be (nil, nil), got (%v, %v)", got, err)
	}
}

func TestAbsoluteNodePath(t *testing.T) {
	root := NewObject()
	a := NewObject()
	root.SetMember("a", a)
	arr := NewArray()
	a.SetMember("arr", arr)
	el := FromValue(int64(3))
	arr.AppendElement(el)

	if got := el.AbsoluteNodePath(); got != "/a/arr/0" {
		t.Errorf("AbsoluteNodePath() = %q, want /a/arr/0", got)
	}
	if got := root.AbsoluteNodePath(); got != "/" {
		t.Errorf("root AbsoluteNodePath() = %q, want /", got)
	}
}

func TestAppendNodeToPath(t *testing.T) {
	for _, tt := range []struct{ base, seg, want string }{
		{"/a", "b", "/a/b"},
		{"/a/", "b", "/a/b"},
		{"", "b", "b"},
	} {
		if got := AppendNodeToPath(tt.base, tt.seg); got != tt.want {
			t.Errorf("AppendNodeToPath(%q, %q) = %q, want %q", tt.base, tt.seg, got, tt.want)
		}
	}
}
