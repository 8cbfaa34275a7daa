package encode

import (
	"strings"

	"github.com/xmlv-format/go-xmlv/ir"
	"github.com/xmlv-format/go-xmlv/xmltree"
)

// rootShape decides the root and item tags from the top-level value
// shape. A pinned root tag wins outright; otherwise a known record
// name for a homogeneous collection derives plural root and singular
// item tags; failing both, the defaults apply.
func rootShape(node *ir.Node, es *encState) (rootTag, itemTag string, pinned bool) {
	if es.root != "" {
		return es.root, es.elementTag, true
	}
	if es.recordName != "" && node.IsSequence() {
		return plural(es.recordName), es.recordName, false
	}
	return DefaultRootTag, es.elementTag, false
}

// collapseRoot implements the single-child collapse: a default-root
// wrapper around exactly one child is rewritten so the child's tag
// becomes the outer tag. Pinned and derived root tags never collapse.
func collapseRoot(root *xmltree.Element, rootTag string, pinned bool) *xmltree.Element {
	if pinned || rootTag != DefaultRootTag {
		return root
	}
	if root.Text != "" || len(root.Children()) != 1 {
		return root
	}
	return root.Children()[0].Detach()
}

// plural forms the root tag from a singular record name. It covers
// the regular English patterns; callers wanting anything fancier pin
// the root tag.
func plural(name string) string {
	switch {
	case name == "":
		return name
	case strings.HasSuffix(name, "s"),
		strings.HasSuffix(name, "x"),
		strings.HasSuffix(name, "z"),
		strings.HasSuffix(name, "ch"),
		strings.HasSuffix(name, "sh"):
		return name + "es"
	case strings.HasSuffix(name, "y") && len(name) > 1 && !isVowel(name[len(name)-2]):
		return name[:len(name)-1] + "ies"
	default:
		return name + "s"
	}
}

func isVowel(c byte) bool {
	switch c | 0x20 {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	default:
		return false
	}
}
