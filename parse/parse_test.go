package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/xmlv-format/go-xmlv/ir"
)

func TestParseScalar(t *testing.T) {
	node, err := Parse([]byte(`<a><b>1</b></a>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := node.Get("a")
	if a == nil || !a.IsMapping() {
		t.Fatalf("expected mapping under a, got %v", a)
	}
	b := a.Get("b")
	if b == nil || b.Type != ir.StringType || b.String != "1" {
		t.Errorf("expected scalar \"1\", got %v", b)
	}
}

func TestParsePromotion(t *testing.T) {
	node, err := Parse([]byte(`<root><item>1</item><item>2</item></root>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	item := node.Get("root").Get("item")
	if !item.IsSequence() {
		t.Fatalf("expected sequence, got %s", item.Type)
	}
	if len(item.Values) != 2 || item.Values[0].String != "1" || item.Values[1].String != "2" {
		t.Errorf("unexpected sequence contents: %v", item.Values)
	}
}

func TestParseSingleOccurrenceStaysBare(t *testing.T) {
	node, err := Parse([]byte(`<root><item>1</item></root>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	item := node.Get("root").Get("item")
	if item.IsSequence() {
		t.Error("single occurrence should not be a sequence")
	}
	if item.String != "1" {
		t.Errorf("expected \"1\", got %q", item.String)
	}
}

func TestParseArrayTags(t *testing.T) {
	node, err := Parse([]byte(`<root><item>1</item></root>`), ArrayTags("item"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	item := node.Get("root").Get("item")
	if !item.IsSequence() {
		t.Fatalf("pre-declared tag should be a sequence, got %s", item.Type)
	}
	if len(item.Values) != 1 || item.Values[0].String != "1" {
		t.Errorf("unexpected sequence contents: %v", item.Values)
	}
}

func TestParseArrayTagsAppend(t *testing.T) {
	node, err := Parse([]byte(`<r><i>1</i><i>2</i><i>3</i></r>`), ArrayTags("i"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	i := node.Get("r").Get("i")
	if len(i.Values) != 3 {
		t.Errorf("expected 3 items, got %d", len(i.Values))
	}
}

func TestParseEmptyElement(t *testing.T) {
	node, err := Parse([]byte(`<a><b/></a>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := node.Get("a").Get("b")
	if b.Type != ir.NullType {
		t.Errorf("expected Null, got %s", b.Type)
	}
}

func TestParseOrderPreserved(t *testing.T) {
	node, err := Parse([]byte(`<r><z>1</z><a>2</a><m>3</m></r>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := node.Get("r")
	want := []string{"z", "a", "m"}
	for i, f := range r.Fields {
		if f != want[i] {
			t.Errorf("field %d = %q, want %q", i, f, want[i])
		}
	}
}

func TestParseMixedContentChildrenWin(t *testing.T) {
	node, err := Parse([]byte(`<a>text<b>1</b>more</a>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := node.Get("a")
	if !a.IsMapping() {
		t.Fatalf("expected mapping, got %s", a.Type)
	}
	if a.Get("b") == nil || a.Get("b").String != "1" {
		t.Errorf("expected child element to survive, got %v", a.Get("b"))
	}
	if len(a.Fields) != 1 {
		t.Errorf("interleaved text must be discarded, got fields %v", a.Fields)
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte(`<a><b></a>`))
	if err == nil {
		t.Fatal("expected error for mismatched close tag")
	}
	var ie *InvalidXMLError
	if !errors.As(err, &ie) {
		t.Fatalf("expected InvalidXMLError, got %T", err)
	}
	if ie.Input != `<a><b></a>` {
		t.Errorf("expected offending input echoed, got %q", ie.Input)
	}
	if !errors.Is(err, ErrParse) {
		t.Error("expected error to wrap ErrParse")
	}
}

func TestParseEmptyInput(t *testing.T) {
	if _, err := Parse(nil); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestParseTrailingGarbage(t *testing.T) {
	if _, err := Parse([]byte(`<a/><b/>`)); err == nil {
		t.Error("expected error for multiple roots")
	}
	if _, err := Parse([]byte(`<a/>junk`)); err == nil {
		t.Error("expected error for trailing text")
	}
}

func TestParseLeadingGarbage(t *testing.T) {
	_, err := Parse([]byte(`junk<a>1</a>`))
	if err == nil {
		t.Fatal("expected error for text before root")
	}
	if !errors.Is(err, ErrParse) {
		t.Errorf("expected error to wrap ErrParse, got %v", err)
	}
	if _, err := Parse([]byte(`</b><a/>`)); err == nil {
		t.Error("expected error for close tag before root")
	}
}

func TestParseMaxDepth(t *testing.T) {
	var b strings.Builder
	n := 40
	for i := 0; i < n; i++ {
		b.WriteString("<d>")
	}
	for i := 0; i < n; i++ {
		b.WriteString("</d>")
	}
	if _, err := Parse([]byte(b.String()), MaxDepth(10)); !errors.Is(err, ErrTooDeep) {
		t.Errorf("expected ErrTooDeep, got %v", err)
	}
	if _, err := Parse([]byte(b.String())); err != nil {
		t.Errorf("default depth should accept input: %v", err)
	}
}

func TestParseDeclarationAndComments(t *testing.T) {
	in := `<?xml version="1.0" encoding="UTF-8"?><!-- doc --><a><b>1</b></a>`
	node, err := Parse([]byte(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node.Get("a").Get("b").String != "1" {
		t.Errorf("unexpected result: %v", node)
	}
}
