package ui

import (
	"context"
	"fmt"
	"reflect"

	"github.com/Eatkin/reddit-cli/internal/data/dispatcher"
	"github.com/Eatkin/reddit-cli/internal/feed"
	"github.com/Eatkin/reddit-cli/internal/logging/events"
	"github.com/Eatkin/reddit-cli/internal/theme"
	"github.com/Eatkin/reddit-cli/internal/ui/command"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// bottomRows is the space reserved for the status line and help footer.
const bottomRows = 2

// defaultBodyHeight is used for half-page jumps before the first resize.
const defaultBodyHeight = 20

type msgHandler func(tea.Msg) tea.Cmd

// Options carries the collaborators the UI needs.
type Options struct {
	Context     context.Context
	Engine      *feed.Engine
	Images      *feed.ImageLoader
	Bus         *command.Bus
	Feeds       []feed.Feed
	RedditBase  string
	Diagnostics []string
	Styles      *theme.Styles
	Keys        *KeyMap
	Width       int
	Height      int
}

// env is shared by every screen.
type env struct {
	stack      *Stack
	engine     *feed.Engine
	images     *feed.ImageLoader
	bus        *command.Bus
	keys       KeyMap
	styles     *theme.Styles
	feeds      []feed.Feed
	redditBase string
	width      int
	height     int
	seq        int
}

func (e *env) nextID(prefix string) string {
	e.seq++
	return fmt.Sprintf("%s#%d", prefix, e.seq)
}

// bodyHeight is the number of rows a screen may fill.
func (e *env) bodyHeight() int {
	if e.height <= 0 {
		return defaultBodyHeight
	}
	if h := e.height - bottomRows; h > 0 {
		return h
	}
	return 1
}

// back pops the current screen unless it is the root.
func (e *env) back() tea.Cmd {
	if e.stack.Len() <= 1 {
		return nil
	}
	return e.stack.Pop()
}

// Model implements the Bubble Tea model for the feed browser.
type Model struct {
	env         *env
	stack       *Stack
	dispatcher  *dispatcher.Dispatcher
	spinner     spinner.Model
	spinning    bool
	help        help.Model
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	quitting    bool
	initCmd     tea.Cmd

	handlers map[reflect.Type]msgHandler
}

// NewModel mounts the feed list as the root screen.
func NewModel(opts Options) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	styles := opts.Styles
	if styles == nil {
		styles = theme.Default()
	}
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	engine := opts.Engine
	if engine == nil {
		engine = feed.NewEngine(feed.NewHTTPSource(), feed.NewCache())
	}
	images := opts.Images
	if images == nil {
		images = feed.NewImageLoader()
	}
	bus := opts.Bus
	if bus == nil {
		bus = command.New(nil)
	}
	stack := NewStack(ctx)
	e := &env{
		stack:      stack,
		engine:     engine,
		images:     images,
		bus:        bus,
		keys:       keys,
		styles:     styles,
		feeds:      append([]feed.Feed(nil), opts.Feeds...),
		redditBase: opts.RedditBase,
	}
	m := &Model{
		env:   e,
		stack: stack,
		dispatcher: dispatcher.New(func(owner string) (dispatcher.Receiver, bool) {
			screen, ok := stack.Find(owner)
			if !ok {
				return nil, false
			}
			return screen, true
		}),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(*styles.Loading)),
		help:    help.New(),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	e.width, e.height = m.width, m.height
	m.initCmd = stack.Push(newFeedListScreen(e, opts.Diagnostics))
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmd := m.initCmd
	m.initCmd = nil
	return m.finishUpdate([]tea.Cmd{cmd})
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.ResultMsg{}): m.handleResultMsg,
		reflect.TypeOf(spinner.TickMsg{}):   m.handleSpinnerTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.env.keys.ForceQuit) {
		m.stack.Clear()
		return nil
	}
	current := m.stack.Current()
	if current == nil {
		return nil
	}
	return current.HandleKey(keyMsg)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.env.width, m.env.height = m.width, m.height
	return nil
}

func (m *Model) handleResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.ResultMsg)
	if !ok {
		return nil
	}
	cmd, _ := m.dispatcher.Handle(result.Result)
	return cmd
}

func (m *Model) handleSpinnerTickMsg(msg tea.Msg) tea.Cmd {
	if !m.currentBusy() {
		m.spinning = false
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return cmd
}

func (m *Model) currentBusy() bool {
	busy, ok := m.stack.Current().(busyScreen)
	return ok && busy.Busy()
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.stack.Len() == 0 {
		if !m.quitting {
			m.quitting = true
			m.env.bus.Stop()
			events.App.Stop("stack-empty")
		}
		return tea.Quit
	}
	if !m.spinning && m.currentBusy() {
		m.spinning = true
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// Quitting reports whether the navigation stack has emptied.
func (m *Model) Quitting() bool {
	return m.quitting
}

// Stack exposes the navigation stack.
func (m *Model) Stack() *Stack {
	return m.stack
}
