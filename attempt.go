package xq

import (
	stderrors "errors"
	"fmt"

	"github.com/jacoelho/xq/errors"
	"github.com/jacoelho/xq/pkg/xmldom"
)

type attemptState int

const (
	attemptAccumulating attemptState = iota
	attemptResolved
	attemptFailed
)

// AttemptHandle accumulates alternative query chains over one root element
// and resolves them lazily, in registration order, when Get is called.
// A handle is single-goroutine state; concurrent callers must each obtain
// their own handle.
type AttemptHandle struct {
	root       *xmldom.Element
	candidates []CompositeKey
	state      attemptState
}

// Attempt returns a fresh handle for tolerant queries rooted at el.
func Attempt(el *xmldom.Element) *AttemptHandle {
	return &AttemptHandle{root: el}
}

// Register appends one candidate chain and returns the same handle, so
// further candidates can be chained syntactically. Every candidate starts
// from the handle's root element, not from the previous candidate's
// result. Nothing is evaluated until Get. Registering on a consumed handle
// has no effect.
func (a *AttemptHandle) Register(keys ...Key) *AttemptHandle {
	if a.state != attemptAccumulating {
		return a
	}
	a.candidates = append(a.candidates, Chain(keys...))
	return a
}

// Get resolves the handle: candidates are evaluated strictly in
// registration order and the first one that does not fail determines the
// result; later candidates are never evaluated and earlier failures are
// discarded. If every candidate fails, Get fails with an
// attempts-exhausted error that joins each candidate's reason. A handle is
// single-use; calling Get again fails.
func (a *AttemptHandle) Get() (Result, error) {
	if a.state != attemptAccumulating {
		return Result{}, errors.New(errors.ErrAttemptConsumed, "attempt handle already resolved")
	}

	var failures []error
	for i, candidate := range a.candidates {
		res, err := Index(a.root, candidate)
		if err == nil {
			a.state = attemptResolved
			return res, nil
		}
		failures = append(failures, fmt.Errorf("candidate %d (%s): %w", i+1, candidate.String(), err))
	}

	a.state = attemptFailed
	if len(a.candidates) == 0 {
		return Result{}, errors.New(errors.ErrAttemptsExhausted, "no candidates registered")
	}
	q := errors.New(errors.ErrAttemptsExhausted, "all %d candidates failed", len(a.candidates))
	q.Err = stderrors.Join(failures...)
	return Result{}, q
}
