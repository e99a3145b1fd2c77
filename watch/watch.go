// Package watch re-runs a callback whenever a watched file changes.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/svalinn/radialbuild/config"
)

var log = config.NamedLogger("watch")

// DefaultDebounce collapses bursts of events from a single save.
const DefaultDebounce = 300 * time.Millisecond

// File calls onChange after path is written or created, at most once per
// debounce period, until ctx is done. The parent directory is watched,
// editors often replace the file instead of writing it in place.
// Callback errors are logged and do not stop watching.
func File(ctx context.Context, path string, debounce time.Duration, onChange func() error) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return errors.Wrapf(err, "watch %s", filepath.Dir(absPath))
	}
	log.Infof("watching %s", absPath)

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debugf("stopped watching %s", absPath)
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			log.Debugf("%s event for %s", event.Op, event.Name)
			resetTimer(timer, debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Errorf("watcher error: %v", err)

		case <-timer.C:
			if err := onChange(); err != nil {
				log.Errorf("%s changed: %v", absPath, err)
			}
		}
	}
}

// resetTimer restarts timer, dropping a tick that fired but was not received.
func resetTimer(timer *time.Timer, d time.Duration) {
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	timer.Reset(d)
}
