package scheduler

import (
	"sync"

	"github.com/taeold/gemini-cli-core-codelab/internal/provider"
)

// batch holds the calls of one Schedule invocation. Every mutation notifies
// the observer with a fresh snapshot; notifications never overlap.
type batch struct {
	mu       sync.Mutex
	calls    []*Call
	observer Observer
}

func newBatch(observer Observer, requests []provider.ToolCallRequest) *batch {
	calls := make([]*Call, len(requests))
	for i, req := range requests {
		calls[i] = &Call{Request: req, Status: StatusValidating}
	}
	return &batch{calls: calls, observer: observer}
}

func (b *batch) update(i int, fn func(c *Call)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fn(b.calls[i])
	b.notifyLocked()
}

func (b *batch) notify() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notifyLocked()
}

func (b *batch) notifyLocked() {
	if b.observer != nil {
		b.observer.OnCallsUpdate(b.snapshotLocked())
	}
}

func (b *batch) get(i int) Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	return *b.calls[i]
}

func (b *batch) request(i int) provider.ToolCallRequest {
	return b.get(i).Request
}

func (b *batch) status(i int) Status {
	return b.get(i).Status
}

func (b *batch) snapshot() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

func (b *batch) snapshotLocked() []Call {
	out := make([]Call, len(b.calls))
	for i, c := range b.calls {
		out[i] = *c
	}
	return out
}
