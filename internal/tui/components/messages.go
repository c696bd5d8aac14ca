package components

import "github.com/Veraticus/taxref/internal/model"

// QueryChangedMsg is sent whenever the search text changes.
type QueryChangedMsg struct {
	Query string
}

// QuerySubmittedMsg is sent when the search is confirmed with Enter.
type QuerySubmittedMsg struct {
	Query string
}

// EntrySelectedMsg is sent when an entry is chosen from a result list.
type EntrySelectedMsg struct {
	Entry model.Entry
	Index int
}

// CloseDetailMsg requests to close the detail view.
type CloseDetailMsg struct{}

// NavigateDetailMsg requests to show a neighbouring entry in the open detail view.
type NavigateDetailMsg struct {
	Delta int
}

// CodeCopiedMsg reports the outcome of copying a code to the clipboard.
type CodeCopiedMsg struct {
	Err  error
	Code string
}

// ShowHelpMsg toggles the help screen.
type ShowHelpMsg struct{}
