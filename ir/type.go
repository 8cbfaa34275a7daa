package ir

import "fmt"

// Type identifies the variant of a Node. The set is closed: every
// consumer switches exhaustively over these four values.
type Type int

const (
	NullType Type = iota
	StringType
	ObjectType
	ArrayType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:   "Null",
		StringType: "String",
		ObjectType: "Object",
		ArrayType:  "Array",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":   NullType,
		"String": StringType,
		"Object": ObjectType,
		"Array":  ArrayType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		StringType,
		ObjectType,
		ArrayType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}
