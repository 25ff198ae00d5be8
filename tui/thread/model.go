package thread

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lastnpcalex/ATProto/app"
	"github.com/lastnpcalex/ATProto/domain"
	"github.com/lastnpcalex/ATProto/tui/common"
)

// --- Messages ---

// PostLoadedMsg is sent when a post and its thread context are loaded.
type PostLoadedMsg struct {
	URI    string
	Post   domain.Post
	Thread domain.Thread
}

// PostErrorMsg is sent when a post fetch fails.
type PostErrorMsg struct {
	URI string
	Err error
}

// LikesLoadedMsg is sent when the likes panel data arrives.
type LikesLoadedMsg struct {
	URI   string
	Likes []domain.Like
	Err   error
}

// QuotesLoadedMsg is sent when the quotes panel data arrives.
type QuotesLoadedMsg struct {
	URI    string
	Quotes []domain.Post
	Err    error
}

// NewInputMsg asks the root model to prompt for a new URL or URI.
type NewInputMsg struct{}

type panel int

const (
	panelNone panel = iota
	panelLikes
	panelQuotes
)

// --- Model ---

// Model holds the state for the thread navigation view: exactly one post
// is current at any time, and every navigation replaces it wholesale.
type Model struct {
	posts app.PostService

	uri     string // currently displayed post
	post    domain.Post
	thread  domain.Thread
	hasPost bool

	loading    bool
	pendingURI string // fetch in flight; stale responses are dropped
	status     string // transient message shown in the status bar
	numberBuf  string // digits typed towards a reply selection

	panel        panel
	panelLoading bool
	likes        []domain.Like
	quotes       []domain.Post

	keys    common.KeyMap
	spinner spinner.Model
	width   int
	height  int
}

// New creates a thread model with injected dependencies.
func New(posts app.PostService) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#0085FF"))

	return Model{
		posts:   posts,
		keys:    common.DefaultKeyMap(),
		spinner: s,
	}
}

// Open starts loading the post at uri and displays it when it arrives.
func (m Model) Open(uri string) (Model, tea.Cmd) {
	return m.navigate(uri)
}

func (m Model) navigate(uri string) (Model, tea.Cmd) {
	m.loading = true
	m.pendingURI = uri
	m.status = ""
	m.numberBuf = ""
	m.panel = panelNone
	m.panelLoading = false
	return m, tea.Batch(m.fetchPost(uri), m.spinner.Tick)
}

// URI returns the URI of the currently displayed post.
func (m Model) URI() string {
	return m.uri
}

// HasPost reports whether a post is currently displayed.
func (m Model) HasPost() bool {
	return m.hasPost
}

// Loading reports whether a navigation fetch is in flight.
func (m Model) Loading() bool {
	return m.loading
}

// Status returns the transient status message, if any.
func (m Model) Status() string {
	return m.status
}
