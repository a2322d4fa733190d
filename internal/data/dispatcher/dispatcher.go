package dispatcher

import (
	"github.com/Eatkin/reddit-cli/internal/backend"
	"github.com/Eatkin/reddit-cli/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Receiver applies a task result to the screen that started it.
type Receiver interface {
	Apply(res backend.Result) tea.Cmd
}

// Lookup finds the mounted receiver for an owner id.
type Lookup func(owner string) (Receiver, bool)

// Outcome reports what happened to a result.
type Outcome int

const (
	Delivered Outcome = iota
	DroppedCancelled
	DroppedUnmounted
)

func (o Outcome) String() string {
	switch o {
	case Delivered:
		return "delivered"
	case DroppedCancelled:
		return "cancelled"
	case DroppedUnmounted:
		return "unmounted"
	default:
		return "unknown"
	}
}

// Dispatcher routes finished tasks to their owners. Results for owners that
// are no longer mounted are dropped.
type Dispatcher struct {
	lookup Lookup
}

func New(lookup Lookup) *Dispatcher {
	return &Dispatcher{lookup: lookup}
}

func (d *Dispatcher) Handle(res backend.Result) (tea.Cmd, Outcome) {
	if res.Cancelled {
		events.Command.Drop(res.TaskID, res.Owner, DroppedCancelled.String())
		return nil, DroppedCancelled
	}
	if d.lookup == nil {
		events.Command.Drop(res.TaskID, res.Owner, DroppedUnmounted.String())
		return nil, DroppedUnmounted
	}
	receiver, ok := d.lookup(res.Owner)
	if !ok || receiver == nil {
		events.Command.Drop(res.TaskID, res.Owner, DroppedUnmounted.String())
		return nil, DroppedUnmounted
	}
	return receiver.Apply(res), Delivered
}
