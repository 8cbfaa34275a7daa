// Package encode serializes ir nodes to XML trees.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	})
//	s, err := encode.EncodeString(node, encode.Root("person"))
//
// Null suppression, namespace rewriting and the root-shape rules are
// controlled through EncodeOptions; see opts.go.
//
// # Related Packages
//
//   - github.com/xmlv-format/go-xmlv/ir - value representation
//   - github.com/xmlv-format/go-xmlv/parse - XML to ir
package encode
