package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// refreshViewMsg asks every view on the stack to reload its data.
type refreshViewMsg struct{}

// cmdOutputMsg carries text output to be displayed in the scrollable
// output pane until dismissed.
type cmdOutputMsg struct {
	output string
}

// statusMsg is a one-line notice for the active view's footer.
type statusMsg struct {
	text string
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// showOutput returns a tea.Cmd that opens the output pane.
func showOutput(s string) tea.Cmd {
	return func() tea.Msg { return cmdOutputMsg{output: s} }
}

// wizardCompleteStatus closes a wizard and leaves a footer notice.
func wizardCompleteStatus(text string) tea.Msg {
	return wizardCompleteMsg{nextCmd: func() tea.Msg { return statusMsg{text: text} }}
}
