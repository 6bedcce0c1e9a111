package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	NextTab  key.Binding
	PrevTab  key.Binding
	Home     key.Binding
	Shares   key.Binding
	Insights key.Binding
	Settings key.Binding
	Switcher key.Binding
	Back     key.Binding
	Edit     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Switcher, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Home, k.Shares, k.Insights, k.Settings},
		{k.Switcher, k.Back, k.Edit},
		{k.Help, k.Quit},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Home: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "home"),
		),
		Shares: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "shares"),
		),
		Insights: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "insights"),
		),
		Settings: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "settings"),
		),
		Switcher: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "switch child"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit image"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
