package thread

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lastnpcalex/ATProto/domain"
	"github.com/lastnpcalex/ATProto/tui/common"
)

// Update handles messages for the thread view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading && !m.panelLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case PostLoadedMsg:
		if msg.URI != m.pendingURI {
			return m, nil // superseded by a newer navigation
		}
		m.loading = false
		m.pendingURI = ""
		m.uri = msg.URI
		m.post = msg.Post
		m.thread = msg.Thread
		m.hasPost = true
		return m, nil

	case PostErrorMsg:
		if msg.URI != m.pendingURI {
			return m, nil
		}
		m.loading = false
		m.pendingURI = ""
		m.status = common.ErrorMessage(msg.Err)
		return m, nil

	case LikesLoadedMsg:
		if m.panel != panelLikes || msg.URI != m.uri {
			return m, nil
		}
		m.panelLoading = false
		if msg.Err != nil {
			m.panel = panelNone
			m.status = common.ErrorMessage(msg.Err)
			return m, nil
		}
		m.likes = msg.Likes
		return m, nil

	case QuotesLoadedMsg:
		if m.panel != panelQuotes || msg.URI != m.uri {
			return m, nil
		}
		m.panelLoading = false
		if msg.Err != nil {
			m.panel = panelNone
			m.status = common.ErrorMessage(msg.Err)
			return m, nil
		}
		m.quotes = msg.Quotes
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.loading {
		return m, nil // one navigation at a time
	}
	if key.Matches(msg, m.keys.NewPost) {
		return m, func() tea.Msg { return NewInputMsg{} }
	}
	if !m.hasPost {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Parent):
		if m.thread.Parent == nil {
			m.status = common.ErrorMessage(domain.ErrNoParent)
			return m, nil
		}
		return m.navigate(m.thread.Parent.URI)

	case key.Matches(msg, m.keys.Root):
		if m.thread.Root == nil {
			m.status = common.ErrorMessage(domain.ErrNoRoot)
			return m, nil
		}
		return m.navigate(m.thread.Root.URI)

	case key.Matches(msg, m.keys.Likes):
		if m.panel == panelLikes {
			m.panel = panelNone
			return m, nil
		}
		m.panel = panelLikes
		m.panelLoading = true
		m.likes = nil
		return m, tea.Batch(m.fetchLikes(m.uri), m.spinner.Tick)

	case key.Matches(msg, m.keys.Quotes):
		if m.panel == panelQuotes {
			m.panel = panelNone
			return m, nil
		}
		m.panel = panelQuotes
		m.panelLoading = true
		m.quotes = nil
		return m, tea.Batch(m.fetchQuotes(m.uri), m.spinner.Tick)

	case key.Matches(msg, m.keys.Open):
		return m, openURL(m.post.WebURL())

	case key.Matches(msg, m.keys.Select):
		return m.selectReply()

	case key.Matches(msg, m.keys.Back):
		if m.panel != panelNone {
			m.panel = panelNone
			m.panelLoading = false
			return m, nil
		}
		m.numberBuf = ""
		m.status = ""
		return m, nil
	}

	switch msg.String() {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.numberBuf += msg.String()
		m.status = ""
		return m, nil
	case "backspace":
		if m.numberBuf != "" {
			m.numberBuf = m.numberBuf[:len(m.numberBuf)-1]
		}
		return m, nil
	}

	return m, nil
}

func (m Model) selectReply() (Model, tea.Cmd) {
	if m.numberBuf == "" {
		return m, nil
	}
	n, err := strconv.Atoi(m.numberBuf)
	m.numberBuf = ""
	if err != nil || n < 1 || n > len(m.thread.Replies) {
		m.status = fmt.Sprintf("No such reply. Pick a number between 1 and %d.", len(m.thread.Replies))
		if len(m.thread.Replies) == 0 {
			m.status = "This post has no replies."
		}
		return m, nil
	}
	return m.navigate(m.thread.Replies[n-1].URI)
}
