package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the named reader actions and their bindings.
type keyMap struct {
	Toggle  key.Binding
	Back    key.Binding
	Forward key.Binding
	Faster  key.Binding
	Slower  key.Binding
	Reload  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play/pause"),
		),
		Back: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "skip back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "skip forward"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "=", "k", "up"),
			key.WithHelp("+/k", "pace +50"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-", "_", "j", "down"),
			key.WithHelp("-/j", "pace -50"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload clipboard"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp satisfies help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Back, k.Forward, k.Faster, k.Slower, k.Reload, k.Help, k.Quit}
}

// FullHelp satisfies help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Back, k.Forward},
		{k.Faster, k.Slower, k.Reload},
		{k.Help, k.Quit},
	}
}
