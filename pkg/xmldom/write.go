package xmldom

import (
	"fmt"
	"io"
	"strings"
)

// WriteXML writes the element subtree as markup. Elements with no children
// and no text are written self-closed.
func (e *Element) WriteXML(w io.Writer) error {
	if e == nil {
		return fmt.Errorf("nil element")
	}
	var sb strings.Builder
	e.writeTo(&sb)
	_, err := io.WriteString(w, sb.String())
	return err
}

// String returns the element subtree as markup.
func (e *Element) String() string {
	if e == nil {
		return ""
	}
	var sb strings.Builder
	e.writeTo(&sb)
	return sb.String()
}

func (e *Element) writeTo(sb *strings.Builder) {
	sb.WriteByte('<')
	sb.WriteString(e.name)
	for _, a := range e.attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.name)
		sb.WriteString(`="`)
		writeEscaped(sb, a.value, true)
		sb.WriteByte('"')
	}
	if len(e.children) == 0 && !e.hasText {
		sb.WriteString("/>")
		return
	}
	sb.WriteByte('>')
	if e.hasText {
		writeEscaped(sb, e.text, false)
	}
	for _, child := range e.children {
		child.writeTo(sb)
	}
	sb.WriteString("</")
	sb.WriteString(e.name)
	sb.WriteByte('>')
}

func writeEscaped(sb *strings.Builder, s string, attr bool) {
	for _, r := range s {
		switch r {
		case '&':
			sb.WriteString("&amp;")
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		case '"':
			if attr {
				sb.WriteString("&quot;")
			} else {
				sb.WriteRune(r)
			}
		default:
			sb.WriteRune(r)
		}
	}
}
