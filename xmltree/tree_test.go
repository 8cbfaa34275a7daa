package xmltree

import (
	"bytes"
	"testing"
)

func TestWrite(t *testing.T) {
	root := New("root")
	root.SetAttr("id", "1")
	a := root.AddElement("a")
	a.AddText("x < y")
	root.AddElement("b")
	got := root.String()
	want := `<root id="1"><a>x &lt; y</a><b/></root>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteDeclaration(t *testing.T) {
	root := New("r")
	var buf bytes.Buffer
	if err := root.WriteTo(&buf, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Declaration + "<r/>"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestRemoveChild(t *testing.T) {
	root := New("root")
	a := root.AddElement("a")
	b := root.AddElement("b")
	root.RemoveChild(a)
	if len(root.Children()) != 1 || root.Children()[0] != b {
		t.Errorf("unexpected children after remove: %v", root.Children())
	}
	if a.Parent() != nil {
		t.Error("removed child should have no parent")
	}
}

func TestSetAttrReplaces(t *testing.T) {
	e := New("e")
	e.SetAttr("k", "1")
	e.SetAttr("j", "2")
	e.SetAttr("k", "3")
	if len(e.Attrs) != 2 {
		t.Fatalf("expected 2 attrs, got %d", len(e.Attrs))
	}
	if e.Attrs[0].Value != "3" {
		t.Errorf("expected replaced value, got %q", e.Attrs[0].Value)
	}
}

func TestStripDeclaration(t *testing.T) {
	in := Declaration + "<a/>"
	if got := StripDeclaration(in); got != "<a/>" {
		t.Errorf("got %q", got)
	}
	if got := StripDeclaration("<a/>"); got != "<a/>" {
		t.Errorf("got %q", got)
	}
}
