package tui

// prefsSavedMsg reports the outcome of persisting preferences.
type prefsSavedMsg struct {
	err error
}
