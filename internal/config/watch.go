package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/kataras/golog"
)

var logger = golog.Child("[config]")

// reloadDelay coalesces the bursts of events editors produce on save.
const reloadDelay = 100 * time.Millisecond

// Watch reloads the file at path each time it changes and passes the
// result to fn: either the new configuration or the error that prevented
// loading it. Watch blocks until ctx is done and then returns ctx.Err().
//
// The directory is watched rather than the file, so replacing the file by
// rename is seen as a change.
func Watch(ctx context.Context, path string, fn func(*Config, error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	const changes = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

	timer := time.NewTimer(reloadDelay)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || ev.Op&changes == 0 {
				continue
			}
			logger.Debugf("config %s: %s", ev.Op, path)
			timer.Reset(reloadDelay)

		case <-timer.C:
			cfg, err := Load(path)
			if err != nil {
				logger.Warnf("reloading %s: %v", path, err)
			}
			fn(cfg, err)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fn(nil, fmt.Errorf("watching %s: %w", path, err))
		}
	}
}
