// Package parse builds ir values from XML input. The streaming
// tokenizer is encoding/xml's Decoder; this package only consumes its
// event stream and never scans raw bytes itself.
package parse

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/xmlv-format/go-xmlv/ir"
)

// Parse decodes one XML document into a mapping whose single field is
// the root element's name. Repeated sibling tags become sequences: the
// first occurrence of a tag is stored bare and promoted to a sequence
// when a second sibling with the same name arrives, unless the tag was
// pre-declared via ArrayTags, in which case the first occurrence is
// already a one-element sequence.
//
// Element attributes are not mapped; characters-only content yields a
// scalar; an element with neither text nor children yields Null. When
// text and child elements appear in the same element, child elements
// win and the text is discarded.
func Parse(data []byte, opts ...ParseOption) (*ir.Node, error) {
	po := newParseOpts(opts)
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, invalid(data, err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			if cd, isText := tok.(xml.CharData); isText && strings.TrimSpace(string(cd)) != "" {
				return nil, invalid(data, errors.New("text before root element"))
			}
			continue
		}
		val, err := parseElement(dec, po, 1)
		if err != nil {
			if errors.Is(err, ErrTooDeep) {
				return nil, err
			}
			return nil, invalid(data, err)
		}
		// trailing garbage after the root is still malformed input
		for {
			tok, err := dec.Token()
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, invalid(data, err)
			}
			if _, ok := tok.(xml.StartElement); ok {
				return nil, invalid(data, errors.New("multiple root elements"))
			}
			if cd, ok := tok.(xml.CharData); ok && strings.TrimSpace(string(cd)) != "" {
				return nil, invalid(data, errors.New("text after root element"))
			}
		}
		res := ir.Object()
		res.Set(start.Name.Local, val)
		return res, nil
	}
}

// parseElement consumes events up to and including the EndElement
// matching the already-consumed StartElement, one stack frame per
// open element.
func parseElement(dec *xml.Decoder, po *parseOpts, depth int) (*ir.Node, error) {
	if depth > po.maxDepth {
		return nil, ErrTooDeep
	}
	obj := ir.Object()
	var text strings.Builder
	sawChild := false
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			sawChild = true
			child, err := parseElement(dec, po, depth+1)
			if err != nil {
				return nil, err
			}
			merge(obj, t.Name.Local, child, po)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			if sawChild {
				return obj, nil
			}
			if s := strings.TrimSpace(text.String()); s != "" {
				return ir.FromString(s), nil
			}
			return ir.Null(), nil
		}
	}
}

// merge implements the sibling-grouping rules at one mapping frame.
// Every branch switches on what is already stored: nothing, a
// sequence, or a bare value awaiting promotion.
func merge(obj *ir.Node, key string, val *ir.Node, po *parseOpts) {
	prev := obj.Get(key)
	switch {
	case prev == nil && po.arrayTags[key]:
		obj.Set(key, ir.FromSlice([]*ir.Node{val}))
	case prev == nil:
		obj.Set(key, val)
	case prev.IsSequence():
		prev.Append(val)
	default:
		// second sighting: promote the provisional bare value
		obj.Set(key, ir.FromSlice([]*ir.Node{prev, val}))
	}
}

func invalid(data []byte, err error) error {
	return &InvalidXMLError{Input: string(data), Err: err}
}
