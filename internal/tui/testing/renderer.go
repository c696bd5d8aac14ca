// Package testing provides test utilities for TUI components.
package testing

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// CommandTimeout bounds how long Collect waits for a single command.
// Commands that take longer, such as cursor blink timers, are dropped.
var CommandTimeout = 50 * time.Millisecond

// TestRenderer drives a Bubble Tea model without a real terminal, feeding
// the messages produced by commands back into the model.
type TestRenderer struct {
	// Output contains the last rendered view
	Output string

	// Messages contains all messages sent to the model
	Messages []tea.Msg

	// UpdateCount tracks how many times Update was called
	UpdateCount int
}

// NewTestRenderer creates a new test renderer.
func NewTestRenderer() *TestRenderer {
	return &TestRenderer{
		Messages: make([]tea.Msg, 0),
	}
}

// Send delivers msg and every message its commands produce, depth first,
// and returns the resulting model. Quit messages are recorded but not
// delivered.
func (r *TestRenderer) Send(model tea.Model, msgs ...tea.Msg) tea.Model {
	queue := append([]tea.Msg(nil), msgs...)
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]

		r.Messages = append(r.Messages, msg)
		if _, ok := msg.(tea.QuitMsg); ok {
			continue
		}

		r.UpdateCount++
		var cmd tea.Cmd
		model, cmd = model.Update(msg)
		queue = append(Collect(cmd), queue...)
	}

	r.Output = model.View()
	return model
}

// Quit reports whether the model asked the program to exit.
func (r *TestRenderer) Quit() bool {
	for _, msg := range r.Messages {
		if _, ok := msg.(tea.QuitMsg); ok {
			return true
		}
	}
	return false
}

// Plain returns the last output without ANSI codes or borders.
func (r *TestRenderer) Plain() string {
	return Plain(r.Output)
}

// Lines returns the output split by newlines.
func (r *TestRenderer) Lines() []string {
	return strings.Split(r.Output, "\n")
}

// Collect runs cmd and returns the messages it produces, flattening batches.
func Collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	done := make(chan tea.Msg, 1)
	go func() {
		done <- cmd()
	}()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(CommandTimeout):
		return nil
	}

	switch msg := msg.(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, Collect(c)...)
		}
		return out
	default:
		return []tea.Msg{msg}
	}
}
