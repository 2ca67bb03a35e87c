package tgui

import (
	"html"
	"strings"
)

// H is HTML ready for ParseMode="HTML". Anything of type H is treated as
// already escaped.
type H string

func (h H) String() string { return string(h) }

// Esc escapes plain text for Telegram HTML mode.
func Esc(s string) H { return H(html.EscapeString(s)) }

// Raw asserts that s is already safe HTML.
func Raw(s string) H { return H(s) }

func tagged(tag string, s string) H {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(tag)
	b.WriteByte('>')
	b.WriteString(html.EscapeString(s))
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
	return H(b.String())
}

func B(s string) H    { return tagged("b", s) }
func I(s string) H    { return tagged("i", s) }
func Code(s string) H { return tagged("code", s) }

// Pre renders a preformatted code block.
func Pre(s string) H {
	return "<pre><code>" + Esc(s) + "</code></pre>"
}

// JoinH concatenates parts with sep. Parts that are blank after trimming
// are left out so optional lines don't produce double separators.
func JoinH(sep string, parts ...H) H {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(string(p)) != "" {
			kept = append(kept, string(p))
		}
	}
	return H(strings.Join(kept, sep))
}
