package thread

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/lastnpcalex/ATProto/domain"
	"github.com/lastnpcalex/ATProto/tui/common"
)

const cardWidth = 74

// View renders the thread view as a string.
func (m Model) View() string {
	var b strings.Builder

	title := common.AppTitleStyle.Padding(1, 0, 0, 1).Render("🦋 ATProto")
	tagline := common.TaglineStyle.Render("<thread surfing from the terminal>")
	b.WriteString(title + tagline + "\n\n")

	if m.loading {
		b.WriteString(fmt.Sprintf("  %s Fetching post...\n", m.spinner.View()))
		b.WriteString("\n" + m.statusBar())
		return b.String()
	}

	if !m.hasPost {
		b.WriteString("  No post loaded.\n")
		if m.status != "" {
			b.WriteString("\n  " + common.ErrorStyle.Render(m.status) + "\n")
		}
		b.WriteString("\n" + m.statusBar())
		return b.String()
	}

	b.WriteString(m.renderPostCard())

	if m.panel != panelNone {
		b.WriteString("\n" + m.renderPanel())
	} else {
		b.WriteString("\n" + m.renderReplies())
	}

	if m.numberBuf != "" {
		b.WriteString("\n  " + common.ReplyIndexStyle.Render("reply #: "+m.numberBuf+"_") + "\n")
	}

	if m.status != "" {
		b.WriteString("\n  " + common.ErrorStyle.Render(m.status) + "\n")
	}

	b.WriteString("\n" + m.statusBar())
	return b.String()
}

func (m Model) renderPostCard() string {
	var card strings.Builder

	author := common.AuthorStyle.Render(m.post.Author())
	card.WriteString(author + "\n")
	if !m.post.CreatedAt.IsZero() {
		card.WriteString(common.TimestampStyle.Render(m.post.CreatedAt.Format("Monday, Jan 02, 2006 at 15:04")) + "\n")
	}

	if m.thread.Parent != nil {
		card.WriteString(common.ContextStyle.Render("⬑ Reply to "+m.thread.Parent.Author()) + "\n")
	}
	if m.thread.Root != nil && (m.thread.Parent == nil || m.thread.Root.URI != m.thread.Parent.URI) {
		card.WriteString(common.ContextStyle.Render("⬑ Thread by "+m.thread.Root.Author()) + "\n")
	}
	card.WriteString("\n")

	card.WriteString(common.ContentStyle.Width(cardWidth - 8).Render(m.post.Text) + "\n")

	for i, img := range m.post.Images {
		alt := img.Alt
		if alt == "" {
			alt = "image"
		}
		card.WriteString("\n" + common.URIStyle.Render(fmt.Sprintf("🖼 [%d] %s: ", i+1, alt)) + common.Hyperlink(img.URL))
	}
	if len(m.post.Images) > 0 {
		card.WriteString("\n")
	}

	card.WriteString("\n" + common.URIStyle.Render(clampToWidth(m.post.URI, cardWidth-8)))
	if web := m.post.WebURL(); web != "" {
		card.WriteString("\n" + common.URIStyle.Render("🔗 ") + common.Hyperlink(web))
	}

	return common.PostCardStyle.Width(cardWidth).Render(card.String()) + "\n"
}

func (m Model) renderReplies() string {
	if len(m.thread.Replies) == 0 {
		return "  " + common.ContextStyle.Render("No replies.") + "\n"
	}

	var b strings.Builder
	b.WriteString("  " + common.SectionStyle.Render(fmt.Sprintf("Replies (%d)", len(m.thread.Replies))) + "\n\n")

	for i, reply := range m.thread.Replies {
		index := common.ReplyIndexStyle.Render(fmt.Sprintf("[%d]", i+1))
		author := common.AuthorStyle.Render(reply.Author())
		preview := truncateToTwoLines(reply.Text, cardWidth-8)

		indicator := lipgloss.NewStyle().Foreground(lipgloss.Color("#444444")).Render("┃ ")
		var body strings.Builder
		for _, line := range strings.Split(preview, "\n") {
			body.WriteString("      " + indicator + common.ContentStyle.Render(line) + "\n")
		}

		b.WriteString(fmt.Sprintf("  %s %s\n%s", index, author, body.String()))
	}
	return b.String()
}

func (m Model) renderPanel() string {
	var content strings.Builder

	switch m.panel {
	case panelLikes:
		content.WriteString(common.SectionStyle.Render("Liked by") + "\n")
		if m.panelLoading {
			content.WriteString(m.spinner.View() + " Loading...")
		} else if len(m.likes) == 0 {
			content.WriteString(common.ContextStyle.Render("No likes yet."))
		} else {
			for _, like := range m.likes {
				content.WriteString(common.AuthorStyle.Render(likeName(like)) + "\n")
			}
		}
	case panelQuotes:
		content.WriteString(common.SectionStyle.Render("Quoted by") + "\n")
		if m.panelLoading {
			content.WriteString(m.spinner.View() + " Loading...")
		} else if len(m.quotes) == 0 {
			content.WriteString(common.ContextStyle.Render("No quotes yet."))
		} else {
			for _, q := range m.quotes {
				preview := truncateToTwoLines(q.Text, cardWidth-8)
				content.WriteString(common.AuthorStyle.Render(q.Author()) + "\n")
				content.WriteString(common.ContentStyle.Render(preview) + "\n")
			}
		}
	}

	return common.PanelStyle.Width(cardWidth).Render(strings.TrimSuffix(content.String(), "\n")) + "\n"
}

func (m Model) statusBar() string {
	items := []string{"q: quit"}
	if !m.hasPost && !m.loading {
		items = []string{"n: new URL", "q: quit"}
	}
	if m.hasPost && !m.loading {
		items = []string{
			"1-9+enter: reply",
			"p: parent",
			"r: root",
			"n: new URL",
			"l: likes",
			"Q: quotes",
			"o: open",
			"q: quit",
		}
		if m.panel != panelNone {
			items = append([]string{"esc: close"}, items...)
		}
	}
	return common.StatusBarStyle.Render("  " + strings.Join(items, " • "))
}

func likeName(like domain.Like) string {
	if like.DisplayName != "" {
		return fmt.Sprintf("%s (@%s)", like.DisplayName, like.Handle)
	}
	return "@" + like.Handle
}

// clampToWidth cuts a single line to width terminal cells, ANSI-aware.
func clampToWidth(line string, width int) string {
	if width <= 0 || ansi.StringWidth(line) <= width {
		return line
	}
	return ansi.Cut(line, 0, width-1) + "…"
}

// truncateToTwoLines wraps and truncates text to at most 2 lines.
func truncateToTwoLines(text string, width int) string {
	if width < 12 {
		width = 12
	}
	wrapped := lipgloss.NewStyle().Width(width).Render(text)
	lines := strings.Split(wrapped, "\n")
	if len(lines) <= 2 {
		return wrapped
	}
	return strings.Join(lines[:2], "\n") + "..."
}
