package ui

import (
	"context"

	"github.com/Eatkin/reddit-cli/internal/backend"
	"github.com/Eatkin/reddit-cli/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Screen is one mounted view on the navigation stack. The stack only ever
// talks to screens through this interface.
type Screen interface {
	ID() string
	Render(width, height int) Frame
	HandleKey(msg tea.KeyMsg) tea.Cmd
	// OnEnter runs when the screen becomes current. ctx is the screen's
	// lifetime token and is cancelled when the screen is popped.
	OnEnter(ctx context.Context) tea.Cmd
	OnExit()
	Apply(res backend.Result) tea.Cmd
}

// busyScreen is implemented by screens that want the loading spinner.
type busyScreen interface {
	Busy() bool
}

type stackEntry struct {
	screen Screen
	ctx    context.Context
	cancel context.CancelFunc
}

// Stack holds the mounted screens. The last entry is current and is the
// only one rendered.
type Stack struct {
	root    context.Context
	entries []stackEntry
}

// NewStack creates an empty stack whose lifetime tokens derive from root.
func NewStack(root context.Context) *Stack {
	if root == nil {
		root = context.Background()
	}
	return &Stack{root: root}
}

// Push mounts screen on top of the stack and enters it.
func (s *Stack) Push(screen Screen) tea.Cmd {
	if screen == nil {
		return nil
	}
	if top := s.Current(); top != nil {
		top.OnExit()
	}
	ctx, cancel := context.WithCancel(s.root)
	s.entries = append(s.entries, stackEntry{screen: screen, ctx: ctx, cancel: cancel})
	events.Stack.Push(screen.ID(), len(s.entries))
	return screen.OnEnter(ctx)
}

// Pop unmounts the current screen and cancels its lifetime token. Popping
// an empty stack does nothing.
func (s *Stack) Pop() tea.Cmd {
	if len(s.entries) == 0 {
		return nil
	}
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	top.screen.OnExit()
	top.cancel()
	events.Stack.Pop(top.screen.ID(), len(s.entries))
	if len(s.entries) == 0 {
		events.Stack.Empty()
		return nil
	}
	next := s.entries[len(s.entries)-1]
	return next.screen.OnEnter(next.ctx)
}

// Clear pops every screen.
func (s *Stack) Clear() {
	for len(s.entries) > 0 {
		s.Pop()
	}
}

// Current returns the top screen, or nil when the stack is empty.
func (s *Stack) Current() Screen {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1].screen
}

// Len reports the number of mounted screens.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Find returns the mounted screen with id.
func (s *Stack) Find(id string) (Screen, bool) {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].screen.ID() == id {
			return s.entries[i].screen, true
		}
	}
	return nil, false
}

// Mounted reports whether a screen with id is still on the stack.
func (s *Stack) Mounted(id string) bool {
	_, ok := s.Find(id)
	return ok
}
