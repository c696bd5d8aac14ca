// Package selection tracks which entry, if any, is open in the detail view.
package selection

import "github.com/Veraticus/taxref/internal/model"

// State is the detail view selection. The zero value is closed.
type State struct {
	entry model.Entry
	open  bool
}

// Select opens entry, replacing any entry already open.
// A nil entry, or one whose payload does not match its kind, is ignored.
func (s *State) Select(entry *model.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	s.entry = *entry
	s.open = true
}

// Close clears the selection. Closing a closed selection does nothing.
func (s *State) Close() {
	*s = State{}
}

// Current returns the open entry.
func (s State) Current() (model.Entry, bool) {
	return s.entry, s.open
}

// Kind returns the kind of the open entry, or "" when closed.
func (s State) Kind() model.Kind {
	if !s.open {
		return ""
	}
	return s.entry.Kind
}

// IsOpen reports whether an entry is selected.
func (s State) IsOpen() bool {
	return s.open
}
