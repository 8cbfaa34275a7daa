// Package xmlv transcodes between dynamically-shaped values and XML
// documents, in both directions, without a fixed schema.
//
// The serialize path runs caller value -> ir -> XML tree -> string;
// the deserialize path runs string -> parser events -> ir -> caller
// value. Each call owns its trees exclusively: the engine is
// synchronous, keeps no state across calls, and needs no locking.
package xmlv

import (
	"encoding/base64"

	"github.com/xmlv-format/go-xmlv/encode"
	"github.com/xmlv-format/go-xmlv/gomap"
	"github.com/xmlv-format/go-xmlv/ir"
	"github.com/xmlv-format/go-xmlv/parse"
)

// Marshal serializes v as an XML document. v may be an *ir.Node or
// any Go value gomap can convert. When v is a collection of records
// and no root tag is pinned, root and item tags derive from the
// record type's name.
func Marshal(v any, opts ...encode.EncodeOption) ([]byte, error) {
	node, err := toNode(v)
	if err != nil {
		return nil, err
	}
	if name := gomap.RecordName(v); name != "" {
		opts = append(opts, encode.RecordName(name))
	}
	s, err := encode.EncodeString(node, opts...)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// MarshalBase64 serializes v and returns the document base64-encoded.
func MarshalBase64(v any, opts ...encode.EncodeOption) (string, error) {
	d, err := Marshal(v, opts...)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(d), nil
}

// Unmarshal deserializes an XML document into v: an *ir.Node for
// the generic tree, a *map[string]any or *any for plain Go values, or
// a typed struct or slice pointer decoded through gomap.
func Unmarshal(data []byte, v any, opts ...parse.ParseOption) error {
	node, err := parse.Parse(data, opts...)
	if err != nil {
		return err
	}
	return gomap.FromIR(node, v)
}

func toNode(v any) (*ir.Node, error) {
	if node, ok := v.(*ir.Node); ok {
		return node, nil
	}
	return gomap.ToIR(v)
}
