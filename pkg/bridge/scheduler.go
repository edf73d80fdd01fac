package bridge

// Scheduler abstracts the block-yield primitive of the concurrency runtime
// that drives native execution.
//
// Native code may be running inside a task scheduled by the host's own
// cooperative runtime. Before such code drives a host operation to completion
// it must mark itself as temporarily blocking so the host scheduler can keep
// servicing queued work; otherwise the awaited operation and the awaiting
// code can end up pinned to the same cooperative thread and deadlock.
type Scheduler interface {
	// BlockInPlace marks the current worker as temporarily blocking, runs fn
	// to completion, then resumes normal scheduling.
	//
	// BlockInPlace must never be called from a context the runtime considers
	// non-suspendable. Violating that precondition is a programming error
	// and the behavior is undefined; implementations are free to panic.
	BlockInPlace(fn func() error) error
}

// InlineScheduler is the Scheduler for plain goroutine execution, where
// blocking a worker never starves the host: fn runs inline.
type InlineScheduler struct{}

// BlockInPlace runs fn on the calling goroutine.
func (InlineScheduler) BlockInPlace(fn func() error) error {
	return fn()
}
