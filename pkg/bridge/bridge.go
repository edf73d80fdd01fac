// Package bridge wraps host-provided asynchronous operations as synchronously
// callable functions usable from blocking native code.
package bridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/quillfmt/quill/pkg/diag"
)

// HostFunc is one host-side asynchronous operation. The request and response
// payloads cross the boundary as JSON. A non-nil error means the delegated
// operation itself reported failure; the error text is the host's verbatim
// message.
type HostFunc func(ctx context.Context, request json.RawMessage) (json.RawMessage, error)

// ErrorKind classifies a failed bridge invocation.
type ErrorKind int

const (
	// KindHost means the delegated operation executed but reported an error.
	// This is a legitimate delegated-operation failure.
	KindHost ErrorKind = iota

	// KindDecode means the host's response could not be interpreted in the
	// expected shape. This indicates a host bug, not an operation failure.
	KindDecode
)

// Error is a failed bridge invocation. Op names the operation, Kind keeps
// host-reported failures distinguishable from malformed responses.
type Error struct {
	Op   string
	Kind ErrorKind
	err  error
}

func (e *Error) Error() string {
	if e.Kind == KindDecode {
		return fmt.Sprintf("failed to decode %s response: %v", e.Op, e.err)
	}
	return fmt.Sprintf("%s threw an error: %v", e.Op, e.err)
}

func (e *Error) Unwrap() error { return e.err }

// Diagnostic converts the bridge error into a diagnostic carrying the host's
// error text verbatim as the note.
func (e *Error) Diagnostic() diag.Diagnostic {
	if e.Kind == KindDecode {
		return diag.Error(fmt.Sprintf("failed to decode %s response", e.Op)).
			WithNote(e.err.Error())
	}
	return diag.Error(fmt.Sprintf("%s threw an error", e.Op)).
		WithNote(e.err.Error())
}

// Bridge wraps one host operation of fixed shape Req -> Resp. A Bridge
// carries no per-call state, only the immutable handle, so a single Bridge
// may be invoked concurrently from multiple worker goroutines.
type Bridge[Req, Resp any] struct {
	op    string
	call  HostFunc
	sched Scheduler
}

// New creates a bridge over the given host operation. op names the operation
// in failure messages. A nil sched defaults to InlineScheduler.
func New[Req, Resp any](op string, call HostFunc, sched Scheduler) *Bridge[Req, Resp] {
	if sched == nil {
		sched = InlineScheduler{}
	}
	return &Bridge[Req, Resp]{op: op, call: call, sched: sched}
}

// Op returns the operation name the bridge was created with.
func (b *Bridge[Req, Resp]) Op() string { return b.op }

// Invoke drives one request through the host operation and decodes the
// response.
//
// The caller must not be inside the non-yielding portion of the host
// scheduler's call stack for this session; Invoke marks the worker as
// temporarily blocking via the Scheduler before driving the call, and that
// primitive is undefined from a non-suspendable context.
//
// There is no timeout by default. A hung host operation hangs the calling
// worker until the host responds; embedders that need a bound pass a
// deadline through ctx.
func (b *Bridge[Req, Resp]) Invoke(ctx context.Context, req Req) (Resp, *Error) {
	var resp Resp

	payload, err := json.Marshal(req)
	if err != nil {
		return resp, &Error{Op: b.op, Kind: KindDecode, err: fmt.Errorf("encode request: %w", err)}
	}

	var raw json.RawMessage
	callErr := b.sched.BlockInPlace(func() error {
		var err error
		raw, err = b.call(ctx, payload)
		return err
	})
	if callErr != nil {
		return resp, &Error{Op: b.op, Kind: KindHost, err: callErr}
	}

	if err := json.Unmarshal(raw, &resp); err != nil {
		return resp, &Error{Op: b.op, Kind: KindDecode, err: err}
	}
	return resp, nil
}
