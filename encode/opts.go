package encode

import "github.com/xmlv-format/go-xmlv/xmltree"

const (
	DefaultRootTag    = "root"
	DefaultElementTag = "element"
)

type EncodeOption func(*encState)

type encState struct {
	root       string
	elementTag string
	recordName string
	ns         map[string]string
	attrs      []xmltree.Attr
	suppress   bool
	decl       bool
	pretty     bool
	indent     string
}

func newEncState(opts []EncodeOption) *encState {
	es := &encState{
		elementTag: DefaultElementTag,
		decl:       true,
		indent:     "  ",
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Root pins the root tag, disabling both root-tag derivation and the
// single-child collapse.
func Root(tag string) EncodeOption {
	return func(es *encState) { es.root = tag }
}

// ElementTag sets the tag used for top-level sequence items that have
// no natural key.
func ElementTag(tag string) EncodeOption {
	return func(es *encState) { es.elementTag = tag }
}

// RecordName names the homogeneous record type the input collection
// was derived from; the root-shape normalizer turns it into singular
// item and plural root tags unless the root tag is pinned.
func RecordName(name string) EncodeOption {
	return func(es *encState) { es.recordName = name }
}

// Namespaces sets the URI -> prefix table used to rewrite
// Clark-notation tag names. Each entry is declared as an
// xmlns:prefix attribute on the root element.
func Namespaces(ns map[string]string) EncodeOption {
	return func(es *encState) { es.ns = ns }
}

// Attr adds an attribute to the root element only; descendants never
// receive caller attributes.
func Attr(name, value string) EncodeOption {
	return func(es *encState) {
		es.attrs = append(es.attrs, xmltree.Attr{Name: name, Value: value})
	}
}

// SuppressNulls omits empty scalars and recursively-empty containers
// from the output. The document root is never pruned.
func SuppressNulls(v bool) EncodeOption {
	return func(es *encState) { es.suppress = v }
}

// Declaration controls the <?xml ...?> header on EncodeString output.
func Declaration(v bool) EncodeOption {
	return func(es *encState) { es.decl = v }
}

// Pretty indents EncodeString output.
func Pretty(v bool) EncodeOption {
	return func(es *encState) { es.pretty = v }
}

// Indent sets the indent unit used when Pretty is on.
func Indent(unit string) EncodeOption {
	return func(es *encState) { es.indent = unit }
}
