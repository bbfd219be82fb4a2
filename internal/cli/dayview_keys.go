package cli

import "github.com/charmbracelet/bubbles/key"

// dayViewKeyMap defines the key bindings of the interactive day view.
type dayViewKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Move   key.Binding
	Start  key.Binding
	End    key.Binding
	Reload key.Binding
	Accept key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

func defaultDayViewKeys() dayViewKeyMap {
	return dayViewKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Move: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "move"),
		),
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "resize start"),
		),
		End: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "resize end"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// browseHelp is the short help line shown while browsing.
func (k dayViewKeyMap) browseHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Move, k.Start, k.End, k.Reload, k.Quit}
}

// gestureHelp is the short help line shown while a gesture is in flight.
func (k dayViewKeyMap) gestureHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Accept, k.Cancel}
}
