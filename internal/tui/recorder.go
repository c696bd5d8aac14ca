package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Recorder captures TUI state changes and renders for debugging.
type Recorder struct {
	logFile  *os.File
	frameDir string
	frameNum int
	enabled  bool
}

// NewRecorder creates a recorder writing into dir. An empty dir disables it,
// as does any failure to create the directory or log file.
func NewRecorder(dir string) *Recorder {
	if dir == "" {
		return &Recorder{}
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return &Recorder{}
	}

	logFile, err := os.Create(filepath.Join(filepath.Clean(dir), "tui.log"))
	if err != nil {
		return &Recorder{}
	}

	r := &Recorder{
		enabled:  true,
		logFile:  logFile,
		frameDir: dir,
	}

	r.Log("TUI Recorder started at %s", dir)
	return r
}

// Enabled reports whether frames are being written.
func (r *Recorder) Enabled() bool {
	return r != nil && r.enabled
}

// Frames returns the number of frames captured so far.
func (r *Recorder) Frames() int {
	if r == nil {
		return 0
	}
	return r.frameNum
}

// RecordState captures the current state.
func (r *Recorder) RecordState(m Model, msg tea.Msg) {
	if !r.Enabled() {
		return
	}

	r.frameNum++

	current, open := m.selection.Current()
	r.Log("\n=== Frame %d ===", r.frameNum)
	r.Log("Time: %s", time.Now().Format("15:04:05.000"))
	r.Log("Message Type: %T", msg)
	r.Log("Query: %q", m.query)
	r.Log("Tab: %s", m.tabs.Active())
	r.Log("Matches: income=%d occupation=%d", len(m.results.Income), len(m.results.Occupations))
	if open {
		r.Log("Detail: %s %s", current.Kind, current.Code())
	}

	view := m.View()
	framePath := filepath.Join(r.frameDir, fmt.Sprintf("frame-%04d.txt", r.frameNum))
	if err := os.WriteFile(framePath, []byte(view), 0o600); err != nil {
		r.Log("Error saving frame: %v", err)
	}
}

// Log writes to the log file.
func (r *Recorder) Log(format string, args ...any) {
	if !r.Enabled() || r.logFile == nil {
		return
	}

	if _, err := fmt.Fprintf(r.logFile, format+"\n", args...); err != nil {
		return
	}
	_ = r.logFile.Sync()
}

// Close closes the recorder.
func (r *Recorder) Close() {
	if r == nil || r.logFile == nil {
		return
	}
	r.Log("Recording complete. %d frames captured.", r.frameNum)
	r.Log("View recording at: %s", r.frameDir)
	_ = r.logFile.Close()
	r.logFile = nil
}
