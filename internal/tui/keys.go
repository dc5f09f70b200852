package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit key.Binding
	Prev   key.Binding
	Next   key.Binding
	GiveUp key.Binding
	Hint   key.Binding
	Stats  key.Binding
	Reset  key.Binding
	Back   key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	Prev:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "level")),
	Next:   key.NewBinding(key.WithKeys("right")),
	GiveUp: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "give up")),
	Hint:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "hint")),
	Stats:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "stats")),
	Reset:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset stats")),
	Back:   key.NewBinding(key.WithKeys("esc")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

// playKeys are shown while a round is running.
type playKeys struct{ keyMap }

func (k playKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Hint, k.GiveUp, k.Stats, k.Quit}
}

func (k playKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// menuKeys are shown while choosing a name or level.
type menuKeys struct{ keyMap }

func (k menuKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Prev, k.Stats, k.Reset, k.Quit}
}

func (k menuKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
