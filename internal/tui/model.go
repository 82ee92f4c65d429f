// Package tui is the interactive todo list: it loads the initial records
// once on start, renders them and appends new ones typed by the user.
package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/source"
)

const (
	// Placeholder prompts for a new entry in the text input.
	Placeholder = "Add a new todo"
	// ButtonLabel labels the add control.
	ButtonLabel = "Add Todo"

	defaultWidth  = 80
	defaultHeight = 24
)

// State is the lifecycle of the record sequence.
type State int

const (
	// StateLoading is the initial state: the fetch has not settled and the
	// sequence is unset. Appends are queued.
	StateLoading State = iota
	// StateReady holds a concrete sequence, loaded and possibly extended.
	StateReady
	// StateFailed means the fetch failed; the sequence holds only local appends.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Focus identifies which control receives keystrokes.
type Focus int

const (
	FocusInput Focus = iota
	FocusButton
	FocusList
	focusCount
)

// Options tune the container.
type Options struct {
	Renderer    ItemRenderer // nil means ItemView
	OnLoadError string       // config.OnLoadErrorShow (default) or config.OnLoadErrorIgnore
	Logger      *slog.Logger
}

type loadedMsg struct{ records []model.Record }

type loadFailedMsg struct{ err error }

// Model is the Bubble Tea model owning the current sequence.
type Model struct {
	ctx      context.Context
	src      source.Source
	log      *slog.Logger
	renderer ItemRenderer
	showErr  bool

	state  State
	items  []model.Record // nil until the fetch settles
	queued []model.Record // appends made while loading
	err    error

	focus Focus
	input textinput.Model
	list  list.Model
	help  help.Model
	keys  keyMap

	width, height int
}

// New builds the container. ctx bounds the initial fetch; cancel it to
// abandon the fetch when the program exits.
func New(ctx context.Context, src source.Source, opts Options) Model {
	if opts.Renderer == nil {
		opts.Renderer = ItemView{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	logger = logging.Component(logger, "tui").With(slog.String("mount_id", uuid.NewString()))

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = Placeholder
	ti.Focus()

	l := list.New(nil, itemDelegate{renderer: opts.Renderer}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.SetStatusBarItemName("todo", "todos")

	m := Model{
		ctx:      ctx,
		src:      src,
		log:      logger,
		renderer: opts.Renderer,
		showErr:  opts.OnLoadError != config.OnLoadErrorIgnore,
		state:    StateLoading,
		input:    ti,
		list:     l,
		help:     help.New(),
		keys:     defaultKeys(),
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

// Init starts the one-shot fetch.
func (m Model) Init() tea.Cmd {
	m.log.Info("mounted")
	return tea.Batch(m.load(), textinput.Blink)
}

func (m Model) load() tea.Cmd {
	ctx, src := m.ctx, m.src
	if ctx == nil {
		ctx = context.Background()
	}
	return func() tea.Msg {
		records, err := src.Fetch(ctx)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return loadedMsg{records: records}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case loadedMsg:
		return m.loaded(msg.records), nil

	case loadFailedMsg:
		return m.failed(msg.err), nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m.setFocus((m.focus + 1) % focusCount)
		case key.Matches(msg, m.keys.Prev):
			return m.setFocus((m.focus + focusCount - 1) % focusCount)
		}

		var cmd tea.Cmd
		switch m.focus {
		case FocusInput:
			if key.Matches(msg, m.keys.Submit) {
				return m.add(), nil
			}
			m.input, cmd = m.input.Update(msg)
		case FocusButton:
			if key.Matches(msg, m.keys.Press) {
				return m.add(), nil
			}
		case FocusList:
			m.list, cmd = m.list.Update(msg)
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// loaded installs the fetched records, then replays appends queued while
// loading so they land after the fetched ones in the order they were made.
func (m Model) loaded(records []model.Record) Model {
	if m.state != StateLoading {
		m.log.Warn("ignoring repeated load", "state", m.state.String())
		return m
	}
	seq := records
	if seq == nil {
		seq = []model.Record{}
	}
	for _, r := range m.queued {
		seq = model.Append(seq, r)
	}
	m.log.Info("loaded", "fetched", len(records), "queued", len(m.queued))
	replayed := len(m.queued) > 0
	m.items = seq
	m.queued = nil
	m.state = StateReady
	m.syncList()
	if replayed {
		m.selectLast()
	}
	return m
}

func (m Model) failed(err error) Model {
	if m.state != StateLoading {
		return m
	}
	m.log.Error("load failed", "error", err, "queued", len(m.queued))
	seq := m.queued
	if seq == nil {
		seq = []model.Record{}
	}
	m.items = seq
	m.queued = nil
	m.err = err
	m.state = StateFailed
	m.syncList()
	return m
}

// add appends the pending text as a new record. Blank text is a no-op.
func (m Model) add() Model {
	text := m.input.Value()
	if model.Blank(text) {
		m.log.Debug("add ignored: blank input")
		return m
	}
	rec := model.Record{Text: text}
	if m.state == StateLoading {
		m.queued = model.Append(m.queued, rec)
		m.log.Debug("add queued until load settles", "queued", len(m.queued))
	} else {
		m.items = model.Append(m.items, rec)
		m.log.Debug("added", "count", len(m.items))
	}
	m.input.Reset()
	m.syncList()
	m.selectLast()
	return m
}

func (m Model) setFocus(f Focus) (tea.Model, tea.Cmd) {
	m.focus = f
	var cmd tea.Cmd
	if f == FocusInput {
		cmd = m.input.Focus()
	} else {
		m.input.Blur()
	}
	m.list.SetDelegate(itemDelegate{renderer: m.renderer, active: f == FocusList})
	return m, cmd
}

// syncList mirrors the visible records into the list component.
func (m *Model) syncList() {
	m.list.SetItems(toListItems(m.visible()))
}

// selectLast moves the list to the page holding the newest record.
func (m *Model) selectLast() {
	if n := len(m.visible()); n > 0 {
		m.list.Select(n - 1)
	}
}

func (m Model) visible() []model.Record {
	if m.state == StateLoading {
		return m.queued
	}
	return m.items
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	// Frame (2 border + 2 padding columns) around everything.
	inner := max(width-4, 10)
	// Header, banner, input row (3 with button border), help, frame.
	m.list.SetSize(inner, max(height-9, 3))
	m.input.Width = max(inner-len(ButtonLabel)-12, 10)
	m.help.Width = inner
}

// Items returns the current sequence: nil while loading.
func (m Model) Items() []model.Record { return m.items }

// Pending returns the appends queued while the fetch is in flight.
func (m Model) Pending() []model.Record { return m.queued }

// State reports the lifecycle state.
func (m Model) State() State { return m.state }

// Err returns the fetch error once the state is StateFailed.
func (m Model) Err() error { return m.err }

// Value returns the pending input text.
func (m Model) Value() string { return m.input.Value() }

// Focused returns the control receiving keystrokes.
func (m Model) Focused() Focus { return m.focus }
