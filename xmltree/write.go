package xmltree

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// Declaration is the document header emitted by WriteTo when the
// declaration toggle is on.
const Declaration = `<?xml version="1.0" encoding="UTF-8"?>`

// WriteTo renders the document rooted at e as compact XML with no
// whitespace between tags. Text and attribute values are XML-escaped;
// empty elements self-close.
func (e *Element) WriteTo(w io.Writer, declaration bool) error {
	buf, ok := w.(*bytes.Buffer)
	if !ok {
		buf = &bytes.Buffer{}
	}
	if declaration {
		buf.WriteString(Declaration)
	}
	if err := write(buf, e); err != nil {
		return err
	}
	if ok {
		return nil
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// String renders the document without a declaration.
func (e *Element) String() string {
	var buf bytes.Buffer
	if err := e.WriteTo(&buf, false); err != nil {
		return ""
	}
	return buf.String()
}

func write(buf *bytes.Buffer, e *Element) error {
	buf.WriteByte('<')
	buf.WriteString(e.Name)
	for _, a := range e.Attrs {
		buf.WriteByte(' ')
		buf.WriteString(a.Name)
		buf.WriteString(`="`)
		if err := xml.EscapeText(buf, []byte(a.Value)); err != nil {
			return err
		}
		buf.WriteByte('"')
	}
	if len(e.children) == 0 && e.Text == "" {
		buf.WriteString("/>")
		return nil
	}
	buf.WriteByte('>')
	if len(e.children) == 0 {
		if err := xml.EscapeText(buf, []byte(e.Text)); err != nil {
			return err
		}
	}
	for _, c := range e.children {
		if err := write(buf, c); err != nil {
			return err
		}
	}
	buf.WriteString("</")
	buf.WriteString(e.Name)
	buf.WriteByte('>')
	return nil
}

// StripDeclaration removes a leading XML declaration from s, if
// present.
func StripDeclaration(s string) string {
	t := strings.TrimLeft(s, " \t\r\n")
	if !strings.HasPrefix(t, "<?xml") {
		return s
	}
	end := strings.Index(t, "?>")
	if end < 0 {
		return s
	}
	return strings.TrimLeft(t[end+2:], " \t\r\n")
}
