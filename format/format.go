// Package format provides the cosmetic indentation pass over flat
// XML output, plus its inverse. Both are single-pass, stateless
// transforms over tag boundaries; they do no parsing beyond locating
// tags and do not validate input.
package format

import "strings"

type Option func(*fmtState)

type fmtState struct {
	indent string
	colors *Colors
}

// WithIndent sets the indent unit, by default two spaces.
func WithIndent(unit string) Option {
	return func(fs *fmtState) { fs.indent = unit }
}

// WithColors enables terminal colors on tags, attributes and text.
func WithColors(c *Colors) Option {
	return func(fs *fmtState) { fs.colors = c }
}

// chunk is one formatter token: a tag (with any text that directly
// follows it) or a bare text run.
type chunk struct {
	tag  string // "<...>" including brackets, "" for bare text
	text string // text following the tag, whitespace-only runs dropped
}

// Pretty re-indents a flat XML string, one tag per line. A leaf
// element and its text stay on one line. Closing tags outdent before
// printing; opening tags indent after printing; self-closing tags,
// processing instructions and comments leave the depth alone.
// Formatting already-formatted input is a no-op.
func Pretty(s string, opts ...Option) string {
	fs := &fmtState{indent: "  "}
	for _, opt := range opts {
		opt(fs)
	}
	chunks := scan(s)
	var b strings.Builder
	depth := 0
	first := true
	for i := 0; i < len(chunks); i++ {
		c := chunks[i]
		k := kindOf(c.tag)
		if k == closeTag && depth > 0 {
			depth--
		}
		if !first {
			b.WriteByte('\n')
		}
		first = false
		for range depth {
			b.WriteString(fs.indent)
		}
		b.WriteString(fs.render(c))
		if k != openTag {
			continue
		}
		if c.text != "" && i+1 < len(chunks) && kindOf(chunks[i+1].tag) == closeTag {
			// leaf element: keep its closing tag inline
			b.WriteString(fs.render(chunks[i+1]))
			i++
			continue
		}
		depth++
	}
	return strings.Trim(b.String(), " \t\r\n")
}

// Minify removes all whitespace between tags.
func Minify(s string) string {
	chunks := scan(s)
	var b strings.Builder
	for _, c := range chunks {
		b.WriteString(c.tag)
		b.WriteString(c.text)
	}
	return b.String()
}

type tagKind int

const (
	textRun tagKind = iota
	openTag
	closeTag
	neutralTag // self-closing, processing instruction, comment
)

func kindOf(tag string) tagKind {
	switch {
	case tag == "":
		return textRun
	case strings.HasPrefix(tag, "</"):
		return closeTag
	case strings.HasPrefix(tag, "<?"),
		strings.HasPrefix(tag, "<!"),
		strings.HasSuffix(tag, "/>"):
		return neutralTag
	default:
		return openTag
	}
}

// scan splits s into chunks at tag boundaries. Quotes inside tags are
// respected, so an attribute value may contain '>'. Whitespace-only
// text between tags is dropped, which is what makes Pretty idempotent.
func scan(s string) []chunk {
	var chunks []chunk
	i := 0
	for i < len(s) {
		start := strings.IndexByte(s[i:], '<')
		if start < 0 {
			if t := s[i:]; strings.TrimSpace(t) != "" {
				chunks = append(chunks, chunk{text: t})
			}
			break
		}
		if t := s[i : i+start]; strings.TrimSpace(t) != "" {
			chunks = append(chunks, chunk{text: t})
		}
		i += start
		end := tagEnd(s, i)
		if end < 0 {
			chunks = append(chunks, chunk{text: s[i:]})
			break
		}
		c := chunk{tag: s[i : end+1]}
		i = end + 1
		next := strings.IndexByte(s[i:], '<')
		if next < 0 {
			next = len(s) - i
		}
		if t := s[i : i+next]; strings.TrimSpace(t) != "" {
			c.text = t
		}
		i += next
		chunks = append(chunks, c)
	}
	return chunks
}

// tagEnd returns the index of the '>' closing the tag starting at
// s[from], or -1.
func tagEnd(s string, from int) int {
	var quote byte
	for i := from + 1; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '>':
			return i
		}
	}
	return -1
}

func (fs *fmtState) render(c chunk) string {
	if fs.colors == nil {
		return c.tag + c.text
	}
	return fs.colors.tag(c.tag) + fs.colors.Color(TextColor, c.text)
}
