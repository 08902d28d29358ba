package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the demo key bindings. It implements help.KeyMap.
type keyMap struct {
	Neutral  key.Binding
	Negative key.Binding
	Positive key.Binding
	Preset   key.Binding
	Burst    key.Binding
	Glyph    key.Binding
	Timeout  key.Binding
	Tap      key.Binding
	Dismiss  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Neutral:  key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "neutral")),
		Negative: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "negative")),
		Positive: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "positive")),
		Preset:   key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "preset")),
		Burst:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "burst")),
		Glyph:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "glyph")),
		Timeout:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "timeout")),
		Tap:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "tap")),
		Dismiss:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Neutral, k.Negative, k.Positive, k.Tap, k.Dismiss, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Neutral, k.Negative, k.Positive, k.Preset, k.Burst},
		{k.Glyph, k.Timeout},
		{k.Tap, k.Dismiss},
		{k.Help, k.Quit},
	}
}
