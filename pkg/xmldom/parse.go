package xmldom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Parse builds an element tree from XML input. Namespace prefixes are not
// interpreted; elements and attributes are addressed by local name only.
// Whitespace-only character data between elements is discarded.
func Parse(r io.Reader) (*Element, error) {
	decoder := xml.NewDecoder(r)

	var root *Element
	var stack []*Element
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("xml read: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if root != nil && len(stack) == 0 {
				return nil, fmt.Errorf("unexpected element %s after document end", t.Name.Local)
			}
			el := New(t.Name.Local)
			for _, attr := range t.Attr {
				if attr.Name.Space == "xmlns" || attr.Name.Local == "xmlns" {
					continue
				}
				el.SetAttr(attr.Name.Local, attr.Value)
			}
			if len(stack) == 0 {
				root = el
			} else {
				stack[len(stack)-1].Append(el)
			}
			stack = append(stack, el)

		case xml.EndElement:
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			text := string(t)
			if strings.TrimSpace(text) == "" {
				continue
			}
			top := stack[len(stack)-1]
			if top.hasText {
				top.text += text
			} else {
				top.SetText(text)
			}
		}
	}

	if root == nil {
		return nil, io.ErrUnexpectedEOF
	}
	return root, nil
}

// FromString builds an element tree from an XML string.
func FromString(s string) (*Element, error) {
	return Parse(strings.NewReader(s))
}
