package ir

import "testing"

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		name string
		node *Node
		want bool
	}{
		{"null", Null(), true},
		{"empty string", FromString(""), true},
		{"string", FromString("x"), false},
		{"empty object", Object(), true},
		{"empty array", FromSlice(nil), true},
		{"array with null", FromSlice([]*Node{Null()}), false},
		{"object with field", FromKeyVals([]KeyVal{{"a", Null()}}), false},
		{"nil", nil, true},
	}
	for _, c := range cases {
		if got := c.node.IsEmpty(); got != c.want {
			t.Errorf("%s: IsEmpty() = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestSetPreservesOrder(t *testing.T) {
	obj := Object()
	obj.Set("b", FromString("1"))
	obj.Set("a", FromString("2"))
	obj.Set("b", FromString("3"))
	if len(obj.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(obj.Fields))
	}
	if obj.Fields[0] != "b" || obj.Fields[1] != "a" {
		t.Errorf("unexpected field order: %v", obj.Fields)
	}
	if obj.Get("b").String != "3" {
		t.Errorf("expected replaced value, got %q", obj.Get("b").String)
	}
}

func TestEqual(t *testing.T) {
	a := FromKeyVals([]KeyVal{
		{"x", FromString("1")},
		{"y", FromSlice([]*Node{FromString("2"), Null()})},
	})
	if !Equal(a, a.Clone()) {
		t.Error("expected clone to be equal")
	}
	b := FromKeyVals([]KeyVal{
		{"y", FromSlice([]*Node{FromString("2"), Null()})},
		{"x", FromString("1")},
	})
	if Equal(a, b) {
		t.Error("field order must be significant")
	}
}

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if back != typ {
			t.Errorf("round trip of %s gave %s", typ, back)
		}
	}
	var bad Type
	if err := bad.UnmarshalText([]byte("Gizmo")); err == nil {
		t.Error("expected error for unknown type name")
	}
}

func TestVisit(t *testing.T) {
	node := FromKeyVals([]KeyVal{
		{"a", FromString("1")},
		{"b", FromSlice([]*Node{FromString("2")})},
	})
	var pre, post int
	err := node.Visit(func(y *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pre != post || pre != 4 {
		t.Errorf("expected 4 pre and post visits, got %d/%d", pre, post)
	}
}
