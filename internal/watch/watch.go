// Package watch reports changes to the open document so the viewer can
// reload it.
package watch

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// Settle is how long a burst of events must stay quiet before a change is
// reported. Editors often write a file in several steps.
const Settle = 100 * time.Millisecond

// ErrClosed is returned by Next after Close.
var ErrClosed = errors.New("watch: closed")

// ChangedMsg is delivered to bubbletea when the file changed.
type ChangedMsg struct{ Path string }

// ErrorMsg is delivered to bubbletea when watching failed.
type ErrorMsg struct{ Err error }

// Watcher watches one file. The parent directory is watched so that
// atomic saves (write to temp, rename over) are seen.
type Watcher struct {
	path   string
	fs     *fsnotify.Watcher
	settle time.Duration
}

func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, err
	}
	return &Watcher{path: abs, fs: fs, settle: Settle}, nil
}

// Path is the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op&fsnotify.Write == fsnotify.Write ||
		ev.Op&fsnotify.Create == fsnotify.Create ||
		ev.Op&fsnotify.Rename == fsnotify.Rename
}

// Next blocks until the file changed and the event burst settled.
func (w *Watcher) Next(ctx context.Context) error {
	var quiet <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.fs.Events:
			if !ok {
				return ErrClosed
			}
			if w.relevant(ev) {
				quiet = time.After(w.settle)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return ErrClosed
			}
			return err
		case <-quiet:
			return nil
		}
	}
}

// Cmd waits for the next change as a bubbletea command. It yields
// ChangedMsg, ErrorMsg, or nil once the watcher is closed.
func (w *Watcher) Cmd() tea.Cmd {
	return func() tea.Msg {
		err := w.Next(context.Background())
		switch {
		case err == nil:
			return ChangedMsg{Path: w.path}
		case errors.Is(err, ErrClosed):
			return nil
		default:
			return ErrorMsg{Err: err}
		}
	}
}

func (w *Watcher) Close() error { return w.fs.Close() }
