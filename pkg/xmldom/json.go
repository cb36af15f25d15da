package xmldom

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes the element as the tuple form
// [tag, {attrs}, [children]] with a trailing text member when the element
// carries direct text. Attribute order is preserved.
func (e *Element) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := e.encodeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *Element) encodeJSON(buf *bytes.Buffer) error {
	buf.WriteByte('[')
	if err := encodeJSONString(buf, e.name); err != nil {
		return err
	}
	buf.WriteString(",{")
	for i, a := range e.attrs {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeJSONString(buf, a.name); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := encodeJSONString(buf, a.value); err != nil {
			return err
		}
	}
	buf.WriteString("},[")
	for i, child := range e.children {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := child.encodeJSON(buf); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	if e.hasText {
		buf.WriteByte(',')
		if err := encodeJSONString(buf, e.text); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

func encodeJSONString(buf *bytes.Buffer, s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

// UnmarshalJSON decodes the tuple form produced by MarshalJSON, preserving
// attribute order.
func (e *Element) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("element tuple: %w", err)
	}
	if len(parts) < 3 || len(parts) > 4 {
		return fmt.Errorf("element tuple has %d members, want 3 or 4", len(parts))
	}

	var name string
	if err := json.Unmarshal(parts[0], &name); err != nil {
		return fmt.Errorf("element tag: %w", err)
	}

	attrs, err := decodeOrderedAttrs(parts[1])
	if err != nil {
		return err
	}

	var rawChildren []json.RawMessage
	if err := json.Unmarshal(parts[2], &rawChildren); err != nil {
		return fmt.Errorf("element children: %w", err)
	}
	children := make([]*Element, 0, len(rawChildren))
	for _, raw := range rawChildren {
		child := &Element{}
		if err := child.UnmarshalJSON(raw); err != nil {
			return err
		}
		children = append(children, child)
	}

	*e = Element{name: name, attrs: attrs, children: children}
	if len(parts) == 4 {
		var text string
		if err := json.Unmarshal(parts[3], &text); err != nil {
			return fmt.Errorf("element text: %w", err)
		}
		e.SetText(text)
	}
	return nil
}

// decodeOrderedAttrs walks the attribute object token by token; decoding
// into a map would lose attribute order.
func decodeOrderedAttrs(data []byte) ([]Attr, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))

	token, err := decoder.Token()
	if err != nil {
		return nil, fmt.Errorf("element attrs: %w", err)
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("element attrs: want object, got %v", token)
	}

	var attrs []Attr
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("element attrs: %w", err)
		}
		key, ok := keyToken.(string)
		if !ok {
			return nil, fmt.Errorf("element attrs: want string key, got %v", keyToken)
		}
		var value string
		if err := decoder.Decode(&value); err != nil {
			return nil, fmt.Errorf("element attr %q: %w", key, err)
		}
		attrs = append(attrs, Attr{name: key, value: value})
	}
	return attrs, nil
}
