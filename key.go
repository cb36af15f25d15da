package xq

import (
	"strconv"
	"strings"
)

// Key is one step of a query. The variant set is fixed: TagKey, FilterKey,
// PositionKey, and CompositeKey. The unexported apply method both seals the
// interface and carries each variant's evaluation.
type Key interface {
	apply(cur Result) (Result, error)

	// String renders the key in the terse path syntax accepted by Compile.
	String() string
}

// TagKey matches the first child whose tag equals Name, in document order.
// Later children with the same tag are ignored.
type TagKey struct {
	Name string
}

// FilterKey matches every child whose tag equals Name, in document order.
// With a non-empty Path it additionally keeps only children whose attribute
// named by the single-element Path equals Value; children missing the
// attribute are dropped. Attribute paths longer than one name are rejected
// during evaluation.
type FilterKey struct {
	Name  string
	Path  []string
	Value string
}

// PositionKey selects one element of a sequence by ordinal. Negative
// indices count from the end, so -1 is the last element.
type PositionKey struct {
	Index int
}

// CompositeKey applies Keys in order, feeding each step's output to the
// next. It is equivalent to applying the keys one by one.
type CompositeKey struct {
	Keys []Key
}

// Tag returns a key matching the first child with the given tag.
func Tag(name string) TagKey {
	return TagKey{Name: name}
}

// All returns a key matching every child with the given tag.
func All(name string) FilterKey {
	return FilterKey{Name: name}
}

// Where returns a key matching every child with the given tag whose
// attribute attr equals value.
func Where(name, attr, value string) FilterKey {
	return FilterKey{Name: name, Path: []string{attr}, Value: value}
}

// WherePath is Where with an explicit attribute path. Only single-name
// paths are supported; longer paths fail at evaluation.
func WherePath(name string, path []string, value string) FilterKey {
	return FilterKey{Name: name, Path: path, Value: value}
}

// At returns a key selecting the element at the given ordinal of a
// sequence.
func At(index int) PositionKey {
	return PositionKey{Index: index}
}

// Chain packages several keys as one composite key.
func Chain(keys ...Key) CompositeKey {
	return CompositeKey{Keys: keys}
}

func (k TagKey) String() string {
	return k.Name
}

func (k FilterKey) String() string {
	if len(k.Path) == 0 {
		return k.Name + "[]"
	}
	return k.Name + "[" + strings.Join(k.Path, ".") + "=" + k.Value + "]"
}

func (k PositionKey) String() string {
	return strconv.Itoa(k.Index)
}

func (k CompositeKey) String() string {
	parts := make([]string, 0, len(k.Keys))
	for _, key := range k.Keys {
		if key == nil {
			parts = append(parts, "<nil>")
			continue
		}
		parts = append(parts, key.String())
	}
	return strings.Join(parts, "/")
}
