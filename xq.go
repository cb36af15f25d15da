// Package xq locates and filters elements of a parsed XML tree using a
// small set of composable keys, and can try several alternative query
// paths against the same document, keeping the first one that succeeds.
//
// Queries support tag equality, single-level attribute equality, positional
// indexing, and ordered chaining of these. A chain is written either as
// nested Index calls or packaged as one CompositeKey; both behave
// identically. When a document's shape varies across producers, an
// AttemptHandle tries several chains in order and discards the failures of
// the ones that lose.
package xq

import "github.com/jacoelho/xq/pkg/xmldom"

// Result is the outcome of a query: a single element or an ordered
// sequence of elements, depending on the final key applied.
type Result struct {
	el    *xmldom.Element
	seq   []*xmldom.Element
	isSeq bool
}

func elementResult(el *xmldom.Element) Result {
	return Result{el: el}
}

func sequenceResult(seq []*xmldom.Element) Result {
	return Result{seq: seq, isSeq: true}
}

// Element returns the single element result. The second return is false
// when the result is a sequence or empty.
func (r Result) Element() (*xmldom.Element, bool) {
	if r.isSeq || r.el == nil {
		return nil, false
	}
	return r.el, true
}

// Sequence returns the ordered sequence result. The second return is false
// when the result is a single element. An empty sequence is a valid result.
func (r Result) Sequence() ([]*xmldom.Element, bool) {
	if !r.isSeq {
		return nil, false
	}
	return r.seq, true
}

// Elements returns the result as a slice: the sequence itself, or a
// one-element slice for a single element result.
func (r Result) Elements() []*xmldom.Element {
	if r.isSeq {
		return r.seq
	}
	if r.el == nil {
		return nil
	}
	return []*xmldom.Element{r.el}
}

// Len returns the number of elements in the result.
func (r Result) Len() int {
	if r.isSeq {
		return len(r.seq)
	}
	if r.el == nil {
		return 0
	}
	return 1
}
