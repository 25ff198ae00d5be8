package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lastnpcalex/ATProto/tui/common"
)

// DoneMsg is sent when the prompt is complete (submit or cancel).
type DoneMsg struct {
	Value     string // Empty if cancelled
	Cancelled bool
}

// Model holds the state for the URL/URI input view.
type Model struct {
	input       textinput.Model
	status      string
	allowCancel bool // esc returns to the previous post, if there is one
}

// New creates a prompt model. allowCancel controls whether esc backs out
// of the prompt instead of submitting.
func New(allowCancel bool) Model {
	ti := textinput.New()
	ti.Placeholder = "https://bsky.app/profile/handle/post/rkey or at:// URI"
	ti.CharLimit = 512
	ti.Width = 72
	ti.Focus()

	return Model{
		input:       ti,
		allowCancel: allowCancel,
	}
}

// WithStatus returns a copy of the model showing a status message,
// typically a resolution error from the previous attempt.
func (m Model) WithStatus(status string) Model {
	m.status = status
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the prompt view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.allowCancel {
				return m, done(DoneMsg{Cancelled: true})
			}
			return m, nil

		case "enter":
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				m.status = "Enter a bsky.app post URL or an at:// URI."
				return m, nil
			}
			return m, done(DoneMsg{Value: value})
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt.
func (m Model) View() string {
	var b strings.Builder

	title := common.AppTitleStyle.Padding(1, 0, 0, 1).Render("🦋 ATProto")
	tagline := common.TaglineStyle.Render("<thread surfing from the terminal>")
	b.WriteString(title + tagline + "\n\n")

	b.WriteString("  " + common.SectionStyle.Render("Which post do you want to view?") + "\n\n")
	b.WriteString("  " + m.input.View() + "\n")

	if m.status != "" {
		b.WriteString("\n  " + common.ErrorStyle.Render(m.status) + "\n")
	}

	items := []string{"enter: go"}
	if m.allowCancel {
		items = append(items, "esc: back")
	}
	items = append(items, "ctrl+c: quit")
	b.WriteString("\n" + common.StatusBarStyle.Render("  "+strings.Join(items, " • ")))

	return b.String()
}

func done(msg DoneMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}
