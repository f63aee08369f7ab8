package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces bursts of filesystem events into one reload.
const watchDebounce = 200 * time.Millisecond

// StartWatcher watches the data directory and sends DataChangedMsg to the
// program when a persisted collection changes. Another process (or a
// second terminal) mutating the store shows up in the agenda without a
// manual refresh. The returned function stops the watcher.
func StartWatcher(dir string, program *tea.Program) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	done := make(chan struct{})

	go func() {
		var debounceTimer *time.Timer

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				// Only the JSON collections matter; skip temp files from
				// atomic writes.
				if !strings.HasSuffix(event.Name, ".json") {
					continue
				}

				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(watchDebounce, func() {
					program.Send(DataChangedMsg{})
				})

			case <-watcher.Errors:
				// Watcher errors are non-fatal for a display refresh.

			case <-done:
				return
			}
		}
	}()

	cleanup := func() {
		close(done)
		_ = watcher.Close()
	}

	return cleanup, nil
}
