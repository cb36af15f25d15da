package xq

import (
	stderrors "errors"

	"github.com/jacoelho/xq/errors"
	"github.com/jacoelho/xq/pkg/xmldom"
)

// Index applies one key to an element. A TagKey yields a single element, a
// FilterKey an ordered (possibly empty) sequence, and a CompositeKey feeds
// each step's result into the next, failing fast on the first failing step.
// The tree is never modified.
func Index(el *xmldom.Element, key Key) (Result, error) {
	if el == nil {
		return Result{}, errors.New(errors.ErrTypeMismatch, "query root is nil")
	}
	if key == nil {
		return Result{}, errors.New(errors.ErrTypeMismatch, "nil key")
	}
	return key.apply(elementResult(el))
}

func (k TagKey) apply(cur Result) (Result, error) {
	el, ok := cur.Element()
	if !ok {
		return Result{}, errors.New(errors.ErrTypeMismatch, "tag key %q applied to a sequence", k.Name)
	}
	for _, child := range el.Children() {
		if child.Name() == k.Name {
			return elementResult(child), nil
		}
	}
	return Result{}, errors.New(errors.ErrNoSuchChild, "no child with tag %q", k.Name)
}

func (k FilterKey) apply(cur Result) (Result, error) {
	el, ok := cur.Element()
	if !ok {
		return Result{}, errors.New(errors.ErrTypeMismatch, "filter key %q applied to a sequence", k.String())
	}
	if len(k.Path) > 1 {
		return Result{}, errors.New(errors.ErrInvalidAttributePath, "attribute path %v has %d names, want 1", k.Path, len(k.Path))
	}

	var matches []*xmldom.Element
	for _, child := range el.Children() {
		if child.Name() != k.Name {
			continue
		}
		if len(k.Path) == 1 {
			value, ok := child.Attr(k.Path[0])
			if !ok || value != k.Value {
				continue
			}
		}
		matches = append(matches, child)
	}
	return sequenceResult(matches), nil
}

func (k PositionKey) apply(cur Result) (Result, error) {
	seq, ok := cur.Sequence()
	if !ok {
		return Result{}, errors.New(errors.ErrTypeMismatch, "positional key %d applied to a single element", k.Index)
	}
	index := k.Index
	if index < 0 {
		index += len(seq)
	}
	if index < 0 || index >= len(seq) {
		return Result{}, errors.New(errors.ErrIndexOutOfRange, "index %d out of range for sequence of %d", k.Index, len(seq))
	}
	return elementResult(seq[index]), nil
}

func (k CompositeKey) apply(cur Result) (Result, error) {
	for i, key := range k.Keys {
		if key == nil {
			return Result{}, withStep(errors.New(errors.ErrTypeMismatch, "nil key"), i+1)
		}
		next, err := key.apply(cur)
		if err != nil {
			return Result{}, withStep(err, i+1)
		}
		cur = next
	}
	return cur, nil
}

// withStep records the failing key's ordinal. The innermost chain wins, so
// nested composites keep their own step numbering.
func withStep(err error, step int) error {
	var q *errors.Query
	if stderrors.As(err, &q) && q.Step == 0 {
		q.Step = step
	}
	return err
}
