package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/taeold/gemini-cli-core-codelab/internal/provider"
	"github.com/taeold/gemini-cli-core-codelab/internal/tool"
)

// Options configures a Scheduler.
type Options struct {
	// Approver decides calls awaiting approval. When nil, calls wait until
	// their Confirmation is resolved by someone else (e.g. an Observer).
	Approver Approver
	Observer Observer
	// AutoApprove seeds the session's auto-approve set.
	AutoApprove []string
	// MaxConcurrency bounds parallel executions. Defaults to 4.
	MaxConcurrency int
	Logger         *slog.Logger
}

// Scheduler runs batches of tool calls through validation, approval and
// execution. It owns one session's auto-approve set.
type Scheduler struct {
	tools    toolDecoder
	approver Approver
	observer Observer
	logger   *slog.Logger

	autoApprove *autoApproveSet
	locks       *pathLocks
	pool        *ants.Pool
	closed      atomic.Bool
}

// New creates a Scheduler. Close releases its worker pool.
func New(tools toolDecoder, opts Options) (*Scheduler, error) {
	if tools == nil {
		panic("tools is required")
	}
	size := opts.MaxConcurrency
	if size <= 0 {
		size = 4
	}
	pool, err := ants.NewPool(size)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		tools:       tools,
		approver:    opts.Approver,
		observer:    opts.Observer,
		logger:      logger,
		autoApprove: newAutoApproveSet(opts.AutoApprove),
		locks:       newPathLocks(),
		pool:        pool,
	}, nil
}

// Close releases the worker pool. Schedule fails afterwards.
func (s *Scheduler) Close() {
	if s.closed.CompareAndSwap(false, true) {
		s.pool.Release()
	}
}

// AutoApproved lists the tool names that currently skip confirmation.
func (s *Scheduler) AutoApproved() []string {
	return s.autoApprove.list()
}

// Schedule drives every request to a terminal status and returns the calls
// in request order. Per-call failures are reported on the calls; the error is
// non-nil only when the scheduler is closed.
func (s *Scheduler) Schedule(ctx context.Context, requests []provider.ToolCallRequest) ([]CompletedCall, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}

	b := newBatch(s.observer, assignIDs(requests, time.Now()))
	b.notify()

	// Approval needs are decided against the auto-approve set as it is now,
	// so a ProceedAlways later in this batch does not skip its siblings.
	var awaiting []int
	var wg sync.WaitGroup
	for i := range b.calls {
		if s.validate(ctx, b, i) {
			s.execute(ctx, b, i, &wg)
		} else if b.status(i) == StatusAwaitingApproval {
			awaiting = append(awaiting, i)
		}
	}

	for _, i := range awaiting {
		if s.approve(ctx, b, i) {
			s.execute(ctx, b, i, &wg)
		}
	}

	wg.Wait()

	completed := b.snapshot()
	if s.observer != nil {
		s.observer.OnAllCallsComplete(completed)
	}
	return completed, nil
}

// validate decodes the call and resolves its confirmation need. It returns
// true when the call can execute immediately.
func (s *Scheduler) validate(ctx context.Context, b *batch, i int) bool {
	req := b.request(i)

	t, decoded, err := s.tools.Decode(req.Name, req.Args)
	if err != nil {
		s.logger.Warn("[scheduler] validation failed", "tool", req.Name, "id", req.ID, "error", err)
		b.update(i, func(c *Call) { c.fail(err) })
		return false
	}

	var details *tool.ConfirmationDetails
	if !s.autoApprove.contains(req.Name) {
		details, err = t.Confirmation(ctx, decoded)
		if err != nil {
			b.update(i, func(c *Call) {
				c.tool, c.req = t, decoded
				c.fail(err)
			})
			return false
		}
	}

	if details == nil {
		b.update(i, func(c *Call) {
			c.tool, c.req = t, decoded
			c.Status = StatusExecuting
			c.StartedAt = time.Now()
		})
		return true
	}

	b.update(i, func(c *Call) {
		c.tool, c.req = t, decoded
		c.Status = StatusAwaitingApproval
		c.Confirmation = newConfirmation(*details)
	})
	return false
}

// approve obtains a decision for an awaiting call. It returns true when the
// call should execute.
func (s *Scheduler) approve(ctx context.Context, b *batch, i int) bool {
	if err := ctx.Err(); err != nil {
		b.update(i, func(c *Call) { c.cancel(err) })
		return false
	}

	call := b.get(i)
	conf := call.Confirmation
	if s.approver != nil {
		go func() {
			d, err := s.approver.RequestApproval(ctx, call)
			if err != nil {
				if ctx.Err() == nil {
					s.logger.Warn("[scheduler] approval failed, cancelling", "tool", call.Request.Name, "error", err)
				}
				d = Cancel
			}
			_ = conf.Resolve(d)
		}()
	}

	decision, err := conf.wait(ctx)
	if err != nil {
		b.update(i, func(c *Call) { c.cancel(err) })
		return false
	}

	s.logger.Debug("[scheduler] decision", "tool", call.Request.Name, "id", call.Request.ID, "decision", decision)
	switch decision {
	case ProceedAlways:
		s.autoApprove.add(call.Request.Name)
	case Cancel:
		b.update(i, func(c *Call) { c.cancel(nil) })
		return false
	}

	b.update(i, func(c *Call) {
		c.Status = StatusExecuting
		c.StartedAt = time.Now()
	})
	return true
}

// execute runs the call on the worker pool.
func (s *Scheduler) execute(ctx context.Context, b *batch, i int, wg *sync.WaitGroup) {
	call := b.get(i)

	wg.Add(1)
	task := func() {
		defer wg.Done()

		var target string
		if tg, ok := call.tool.(tool.Targeter); ok {
			target = tg.Target(call.req)
		}
		unlock := s.locks.lock(target)
		defer unlock()

		if err := ctx.Err(); err != nil {
			b.update(i, func(c *Call) { c.cancel(err) })
			return
		}

		res, err := call.tool.Execute(ctx, call.req)
		switch {
		case err != nil && ctx.Err() != nil && isContextError(err):
			b.update(i, func(c *Call) { c.cancel(err) })
		case err != nil:
			s.logger.Warn("[scheduler] tool failed", "tool", call.Request.Name, "id", call.Request.ID, "error", err)
			b.update(i, func(c *Call) { c.fail(err) })
		case res == nil:
			b.update(i, func(c *Call) { c.complete(&tool.Result{}) })
		default:
			b.update(i, func(c *Call) { c.complete(res) })
		}
	}

	if err := s.pool.Submit(task); err != nil {
		wg.Done()
		b.update(i, func(c *Call) { c.fail(fmt.Errorf("submit %s: %w", call.Request.Name, err)) })
	}
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// assignIDs fills missing call IDs with "name-<unix millis>". A counter
// suffix is added when two calls in the batch would share an ID.
func assignIDs(requests []provider.ToolCallRequest, now time.Time) []provider.ToolCallRequest {
	out := make([]provider.ToolCallRequest, len(requests))
	seen := make(map[string]int, len(requests))
	for i, req := range requests {
		id := provider.CallID(req.ID, req.Name, now)
		if n, ok := seen[id]; ok {
			seen[id] = n + 1
			id = fmt.Sprintf("%s-%d", id, n+1)
		} else {
			seen[id] = 0
		}
		req.ID = id
		out[i] = req
	}
	return out
}
