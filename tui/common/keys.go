package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines shared key bindings across all views.
type KeyMap struct {
	Parent  key.Binding // p — jump to the parent post
	Root    key.Binding // r — jump to the thread root
	NewPost key.Binding // n — enter a new URL/URI
	Likes   key.Binding // l — show who liked the post
	Quotes  key.Binding // Q — show quote posts
	Open    key.Binding // o — open in browser
	Select  key.Binding // enter — confirm reply number
	Back    key.Binding // esc — close panel / cancel input
	Quit    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Parent: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "parent"),
		),
		Root: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "root"),
		),
		NewPost: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new URL/URI"),
		),
		Likes: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "likes"),
		),
		Quotes: key.NewBinding(
			key.WithKeys("Q"),
			key.WithHelp("Q", "quotes"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select reply"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
