package cli

import "github.com/charmbracelet/bubbles/key"

// ganttKeyMap implements help.KeyMap for the Gantt view.
type ganttKeyMap struct {
	ZoomIn     key.Binding
	ZoomOut    key.Binding
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	Earlier    key.Binding
	Later      key.Binding
	Reschedule key.Binding
	List       key.Binding
	Refresh    key.Binding
	Cancel     key.Binding
	Help       key.Binding
}

func newGanttKeyMap() ganttKeyMap {
	return ganttKeyMap{
		ZoomIn:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut:    key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "zoom out")),
		Left:       key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "scroll left")),
		Right:      key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "scroll right")),
		Up:         key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "previous item")),
		Down:       key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "next item")),
		Toggle:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "collapse phase")),
		Earlier:    key.NewBinding(key.WithKeys("["), key.WithHelp("[", "1 day earlier")),
		Later:      key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "1 day later")),
		Reschedule: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "set dates")),
		List:       key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "item list")),
		Refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel drag")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	}
}

func (k ganttKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ZoomIn, k.ZoomOut, k.Down, k.Toggle, k.Reschedule, k.Help}
}

func (k ganttKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ZoomIn, k.ZoomOut, k.Left, k.Right},
		{k.Up, k.Down, k.Toggle, k.List},
		{k.Earlier, k.Later, k.Reschedule, k.Refresh},
		{k.Cancel, k.Help},
	}
}
