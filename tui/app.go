package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lastnpcalex/ATProto/app"
	"github.com/lastnpcalex/ATProto/tui/common"
	"github.com/lastnpcalex/ATProto/tui/prompt"
	"github.com/lastnpcalex/ATProto/tui/thread"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Posts      app.PostService
	Resolver   *app.Resolver
	InitialURL string // Optional post URL/URI given on the command line
}

type activeView int

const (
	promptView activeView = iota
	threadView
)

type resolvedMsg struct {
	uri string
}

type resolveErrorMsg struct {
	err error
}

// App is the root Bubble Tea model. It routes between the URL prompt
// and the thread view.
type App struct {
	deps   Deps
	active activeView
	prompt prompt.Model
	thread thread.Model
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	return App{
		deps:   deps,
		active: promptView,
		prompt: prompt.New(false),
		thread: thread.New(deps.Posts),
	}
}

// Init starts with the prompt, or resolves the initial URL if one was given.
func (a App) Init() tea.Cmd {
	if a.deps.InitialURL != "" {
		return tea.Batch(a.prompt.Init(), a.resolve(a.deps.InitialURL))
	}
	return a.prompt.Init()
}

func (a App) resolve(input string) tea.Cmd {
	resolver := a.deps.Resolver
	return func() tea.Msg {
		uri, err := resolver.Resolve(context.Background(), input)
		if err != nil {
			return resolveErrorMsg{err: err}
		}
		return resolvedMsg{uri: uri}
	}
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		var cmd tea.Cmd
		a.thread, cmd = a.thread.Update(msg)
		return a, cmd

	case resolvedMsg:
		a.active = threadView
		var cmd tea.Cmd
		a.thread, cmd = a.thread.Open(msg.uri)
		return a, cmd

	case resolveErrorMsg:
		a.active = promptView
		a.prompt = prompt.New(a.thread.HasPost()).WithStatus(common.ErrorMessage(msg.err))
		return a, a.prompt.Init()

	case prompt.DoneMsg:
		if msg.Cancelled {
			if a.thread.HasPost() {
				a.active = threadView
			}
			return a, nil
		}
		return a, a.resolve(msg.Value)

	case thread.NewInputMsg:
		a.active = promptView
		a.prompt = prompt.New(a.thread.HasPost())
		return a, a.prompt.Init()
	}

	switch a.active {
	case promptView:
		updated, cmd := a.prompt.Update(msg)
		a.prompt = updated
		return a, cmd
	case threadView:
		updated, cmd := a.thread.Update(msg)
		a.thread = updated
		return a, cmd
	}

	return a, nil
}

// View renders the active sub-model.
func (a App) View() string {
	switch a.active {
	case promptView:
		return a.prompt.View()
	case threadView:
		return a.thread.View()
	}
	return ""
}
