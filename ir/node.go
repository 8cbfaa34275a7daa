package ir

// Node is the interchange value for both transcoding directions.
// Object nodes keep their keys in Fields and the corresponding values
// at the same index in Values; insertion order is preserved and keys
// are unique. Array nodes use Values only. String holds the scalar
// text for StringType.
//
// Nodes are exclusively owned by their parent container: no sharing,
// no cycles.
type Node struct {
	Type   Type
	Fields []string
	Values []*Node

	String string
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromSlice(vs []*Node) *Node {
	return &Node{Type: ArrayType, Values: vs}
}

// Object returns an empty mapping node.
func Object() *Node {
	return &Node{Type: ObjectType}
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := Object()
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

// Get returns the value stored under field, or nil.
func (y *Node) Get(field string) *Node {
	for i := range y.Fields {
		if y.Fields[i] == field {
			return y.Values[i]
		}
	}
	return nil
}

// Set stores v under field, replacing any previous value for the same
// field and otherwise appending, so insertion order survives updates.
func (y *Node) Set(field string, v *Node) {
	for i := range y.Fields {
		if y.Fields[i] == field {
			y.Values[i] = v
			return
		}
	}
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, v)
}

// Append adds v to the end of an array node.
func (y *Node) Append(v *Node) {
	y.Values = append(y.Values, v)
}

func (y *Node) IsMapping() bool {
	return y != nil && y.Type == ObjectType
}

func (y *Node) IsSequence() bool {
	return y != nil && y.Type == ArrayType
}

// IsEmpty reports whether y carries no content: nulls, empty strings,
// and objects/arrays without values are empty; everything else is not.
func (y *Node) IsEmpty() bool {
	if y == nil {
		return true
	}
	switch y.Type {
	case NullType:
		return true
	case StringType:
		return y.String == ""
	case ObjectType, ArrayType:
		return len(y.Values) == 0
	default:
		return false
	}
}

// Equal compares two nodes structurally. Object field order is
// significant, matching the ordered-mapping contract.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case StringType:
		return a.String == b.String
	case ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if a.Fields[i] != b.Fields[i] {
				return false
			}
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type:   y.Type,
		String: y.String,
	}
	if y.Fields != nil {
		res.Fields = append([]string(nil), y.Fields...)
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

// Visit walks the node tree, calling f before and after each node's
// values. Returning false from the pre call skips the values.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
