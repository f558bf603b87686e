// Package logging sets up the process logger. The terminal UI owns the
// screen, so in that mode records go to a file.
package logging

import (
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gogpu/gg"
)

// New returns a text logger on w and makes it the default for slog and
// for the gg renderer.
func New(w io.Writer, level slog.Level) *slog.Logger {
	log := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)
	gg.SetLogger(log)
	return log
}

// ToFile opens path for appending (bubbletea also points the standard log
// package there) and returns a logger on it. The caller closes the file.
func ToFile(path string, level slog.Level) (*slog.Logger, io.Closer, error) {
	f, err := tea.LogToFile(path, "vecview")
	if err != nil {
		return nil, nil, err
	}
	return New(f, level), f, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
