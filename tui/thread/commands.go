package thread

import (
	"context"
	"net/url"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) fetchPost(uri string) tea.Cmd {
	posts := m.posts
	return func() tea.Msg {
		post, thr, err := posts.Fetch(context.Background(), uri)
		if err != nil {
			return PostErrorMsg{URI: uri, Err: err}
		}
		return PostLoadedMsg{URI: uri, Post: post, Thread: thr}
	}
}

func (m Model) fetchLikes(uri string) tea.Cmd {
	posts := m.posts
	return func() tea.Msg {
		likes, err := posts.Likes(context.Background(), uri)
		return LikesLoadedMsg{URI: uri, Likes: likes, Err: err}
	}
}

func (m Model) fetchQuotes(uri string) tea.Cmd {
	posts := m.posts
	return func() tea.Msg {
		quotes, err := posts.Quotes(context.Background(), uri)
		return QuotesLoadedMsg{URI: uri, Quotes: quotes, Err: err}
	}
}

func openURL(rawURL string) tea.Cmd {
	return func() tea.Msg {
		if !isSafeExternalURL(rawURL) {
			return nil
		}
		_ = exec.Command("open", rawURL).Start()
		return nil
	}
}

func isSafeExternalURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if parsed.Host == "" {
		return false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return true
	default:
		return false
	}
}
