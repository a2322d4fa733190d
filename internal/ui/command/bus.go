package command

import (
	"context"

	"github.com/Eatkin/reddit-cli/internal/backend"
	"github.com/Eatkin/reddit-cli/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Request describes background work on behalf of a screen.
type Request struct {
	Owner string
	Kind  backend.Kind
	Label string
	Work  backend.Work
}

// ResultMsg carries a finished task back into the event loop.
type ResultMsg struct {
	Result backend.Result
	Label  string
}

// Bus starts tasks on a runner and joins them as Bubble Tea commands.
type Bus struct {
	runner *backend.Runner
}

// New initialises a command bus over runner.
func New(runner *backend.Runner) *Bus {
	if runner == nil {
		runner = backend.NewRunner()
	}
	return &Bus{runner: runner}
}

// Execute starts req immediately and returns the task handle together with
// a command that waits for it. ctx is normally the owner's lifetime token.
func (b *Bus) Execute(ctx context.Context, req Request) (*backend.Task, tea.Cmd) {
	if req.Work == nil {
		return nil, nil
	}
	task := b.runner.Start(ctx, req.Owner, req.Kind, req.Work)
	events.Command.Queue(task.ID, req.Owner, req.Label)
	return task, func() tea.Msg {
		res := task.Wait()
		events.Command.Result(res.TaskID, res.Owner, req.Label, res.Err)
		return ResultMsg{Result: res, Label: req.Label}
	}
}

// Stop cancels every outstanding task.
func (b *Bus) Stop() {
	b.runner.Stop()
}
