package format

import (
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	TagColor ColorAttr = iota
	AttrKeyColor
	AttrValueColor
	TextColor
	DeclColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	colors.Map[TagColor] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[AttrKeyColor] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[AttrValueColor] = color.RGB(88, 158, 86).SprintfFunc()
	colors.Map[TextColor] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[DeclColor] = color.RGB(96, 96, 96).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	if s == "" {
		return s
	}
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}

// tag colorizes one "<...>" token, splitting out attribute keys and
// quoted values.
func (c *Colors) tag(tag string) string {
	if tag == "" {
		return tag
	}
	if strings.HasPrefix(tag, "<?") || strings.HasPrefix(tag, "<!") {
		return c.Color(DeclColor, tag)
	}
	sp := strings.IndexAny(tag, " \t")
	if sp < 0 {
		return c.Color(TagColor, tag)
	}
	var b strings.Builder
	b.WriteString(c.Color(TagColor, tag[:sp]))
	rest := tag[sp:]
	for rest != "" {
		eq := strings.IndexByte(rest, '=')
		if eq < 0 {
			b.WriteString(c.Color(TagColor, rest))
			break
		}
		b.WriteString(c.Color(AttrKeyColor, rest[:eq]))
		b.WriteByte('=')
		rest = rest[eq+1:]
		if rest == "" || (rest[0] != '"' && rest[0] != '\'') {
			continue
		}
		end := strings.IndexByte(rest[1:], rest[0])
		if end < 0 {
			b.WriteString(c.Color(AttrValueColor, rest))
			break
		}
		b.WriteString(c.Color(AttrValueColor, rest[:end+2]))
		rest = rest[end+2:]
	}
	return b.String()
}
