package scheduler

import (
	"context"
	"sync"

	"github.com/taeold/gemini-cli-core-codelab/internal/tool"
)

// Confirmation is the pending approval of one call. It resolves exactly once.
type Confirmation struct {
	tool.ConfirmationDetails

	once     sync.Once
	done     chan struct{}
	decision Decision
}

func newConfirmation(details tool.ConfirmationDetails) *Confirmation {
	return &Confirmation{
		ConfirmationDetails: details,
		done:                make(chan struct{}),
	}
}

// Resolve records d. Only the first call has an effect; later calls return
// ErrAlreadyResolved.
func (c *Confirmation) Resolve(d Decision) error {
	err := ErrAlreadyResolved
	c.once.Do(func() {
		c.decision = d
		close(c.done)
		err = nil
	})
	return err
}

// Done is closed once a decision has been recorded.
func (c *Confirmation) Done() <-chan struct{} {
	return c.done
}

// wait blocks until the confirmation is resolved or ctx ends.
func (c *Confirmation) wait(ctx context.Context) (Decision, error) {
	select {
	case <-c.done:
		return c.decision, nil
	case <-ctx.Done():
		return Cancel, ctx.Err()
	}
}
