package backend

import (
	"context"
	"errors"
	"sync"
)

// Kind identifies what a task produces.
type Kind int

const (
	KindFeed Kind = iota
	KindLoadMore
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindFeed:
		return "feed"
	case KindLoadMore:
		return "load-more"
	case KindImage:
		return "image"
	default:
		return "unknown"
	}
}

// Result is what a finished task hands back to the event loop.
type Result struct {
	TaskID    uint64
	Owner     string
	Kind      Kind
	Data      interface{}
	Err       error
	Cancelled bool
}

// Work is the body of a task. It must honour ctx.
type Work func(ctx context.Context) (interface{}, error)

// Task is a handle on one background job.
type Task struct {
	ID    uint64
	Owner string
	Kind  Kind

	cancel context.CancelFunc
	done   chan struct{}
	result Result
}

// Cancel asks the task to stop. The result is still delivered by Wait.
func (t *Task) Cancel() {
	t.cancel()
}

// Wait blocks until the task finishes and returns its result.
func (t *Task) Wait() Result {
	<-t.done
	return t.result
}

// Runner starts tasks and tracks them until they finish.
type Runner struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu  sync.Mutex
	seq uint64
	wg  sync.WaitGroup
}

// NewRunner creates a runner whose tasks all stop when Stop is called.
func NewRunner() *Runner {
	ctx, cancel := context.WithCancel(context.Background())
	return &Runner{ctx: ctx, cancel: cancel}
}

// Start runs work on its own goroutine. The task context ends when parent
// ends, when Cancel is called, or when the runner stops.
func (r *Runner) Start(parent context.Context, owner string, kind Kind, work Work) *Task {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	stop := context.AfterFunc(r.ctx, cancel)

	r.mu.Lock()
	r.seq++
	task := &Task{ID: r.seq, Owner: owner, Kind: kind, cancel: cancel, done: make(chan struct{})}
	r.mu.Unlock()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer stop()
		defer cancel()
		data, err := work(ctx)
		task.result = Result{
			TaskID:    task.ID,
			Owner:     owner,
			Kind:      kind,
			Data:      data,
			Err:       err,
			Cancelled: errors.Is(ctx.Err(), context.Canceled),
		}
		close(task.done)
	}()
	return task
}

// Stop cancels all tasks. Use Wait for a clean drain.
func (r *Runner) Stop() {
	r.cancel()
}

// Wait blocks until every started task has finished.
func (r *Runner) Wait() {
	r.wg.Wait()
}
