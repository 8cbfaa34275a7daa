package encode

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/xmlv-format/go-xmlv/format"
	"github.com/xmlv-format/go-xmlv/ir"
	"github.com/xmlv-format/go-xmlv/xmlname"
	"github.com/xmlv-format/go-xmlv/xmltree"
)

// Encode builds an XML tree for node. The root element is named by
// the Root option, by a tag derived from RecordName, or by
// DefaultRootTag, in that order of preference.
//
// Repeated siblings are the only sequence representation, so a
// sequence nested directly inside a sequence flattens: its items
// render as additional siblings under the same tag. Wrap inner
// sequences in mappings to keep the grouping.
func Encode(node *ir.Node, opts ...EncodeOption) (*xmltree.Element, error) {
	es := newEncState(opts)
	rootTag, itemTag, pinned := rootShape(node, es)

	root := xmltree.New(es.tagName(rootTag))
	if err := encodeRoot(root, node, itemTag, es); err != nil {
		return nil, err
	}
	root = collapseRoot(root, rootTag, pinned)
	declareRoot(root, es)
	return root, nil
}

// EncodeString builds the tree and renders it, honoring the
// Declaration, Pretty and Indent options.
func EncodeString(node *ir.Node, opts ...EncodeOption) (string, error) {
	es := newEncState(opts)
	root, err := Encode(node, opts...)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := root.WriteTo(&buf, es.decl); err != nil {
		return "", err
	}
	if !es.pretty {
		return buf.String(), nil
	}
	return format.Pretty(buf.String(), format.WithIndent(es.indent)), nil
}

func MustString(node *ir.Node, opts ...EncodeOption) string {
	s, err := EncodeString(node, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// tagName applies the namespace rewrite and sanitization every tag
// name goes through at the point it is chosen.
func (es *encState) tagName(key string) string {
	return xmlname.Sanitize(xmlname.Resolve(key, es.ns))
}

func encodeRoot(root *xmltree.Element, node *ir.Node, itemTag string, es *encState) error {
	if node == nil {
		node = ir.Null()
	}
	switch node.Type {
	case ir.ObjectType:
		_, err := encodeFields(root, node, es)
		return err
	case ir.ArrayType:
		_, err := encodeChild(root, es.tagName(itemTag), node, es)
		return err
	case ir.StringType, ir.NullType:
		if node.String != "" {
			root.AddText(node.String)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupported, node.Type)
	}
}

// encodeChild serializes node under tag as a child of parent. It
// reports whether the subtree turned out entirely empty, so that an
// enclosing suppress-nulls pass can omit its own element too.
func encodeChild(parent *xmltree.Element, tag string, node *ir.Node, es *encState) (bool, error) {
	if node == nil {
		node = ir.Null()
	}
	switch node.Type {
	case ir.NullType, ir.StringType:
		if es.suppress && node.IsEmpty() {
			return true, nil
		}
		el := parent.AddElement(tag)
		el.AddText(node.String)
		return false, nil
	case ir.ObjectType:
		el := parent.AddElement(tag)
		allEmpty, err := encodeFields(el, node, es)
		if err != nil {
			return false, err
		}
		if es.suppress && allEmpty {
			parent.RemoveChild(el)
			return true, nil
		}
		return false, nil
	case ir.ArrayType:
		if len(node.Values) == 0 {
			if es.suppress {
				return true, nil
			}
			parent.AddElement(tag)
			return false, nil
		}
		// N items produce N siblings sharing the same tag.
		allEmpty := true
		for _, item := range node.Values {
			empty, err := encodeChild(parent, tag, item, es)
			if err != nil {
				return false, err
			}
			if !empty {
				allEmpty = false
			}
		}
		return allEmpty, nil
	default:
		return false, fmt.Errorf("%w: %s", ErrUnsupported, node.Type)
	}
}

func encodeFields(el *xmltree.Element, obj *ir.Node, es *encState) (bool, error) {
	allEmpty := true
	for i, key := range obj.Fields {
		empty, err := encodeChild(el, es.tagName(key), obj.Values[i], es)
		if err != nil {
			return false, err
		}
		if !empty {
			allEmpty = false
		}
	}
	return allEmpty, nil
}

// declareRoot sets namespace declarations and caller attributes on
// the final root element; descendants never carry them.
func declareRoot(root *xmltree.Element, es *encState) {
	uris := make([]string, 0, len(es.ns))
	for uri := range es.ns {
		uris = append(uris, uri)
	}
	sort.Strings(uris)
	for _, uri := range uris {
		prefix := es.ns[uri]
		if prefix == "" {
			continue
		}
		root.SetAttr("xmlns:"+prefix, uri)
	}
	for _, a := range es.attrs {
		root.SetAttr(a.Name, a.Value)
	}
}
