// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/katalvlaran/arenagraph/internal/config"
)

var errWatchStdin = errors.New("-watch needs an input file, not stdin")

// watch counts once, then recounts whenever the input file or the config
// file changes, until ctx is done. Count failures are logged, not fatal.
func (a *app) watch(ctx context.Context, stdin io.Reader) error {
	if a.flags.input == "" || a.flags.input == "-" {
		return errWatchStdin
	}
	path := filepath.Clean(a.flags.input)

	recount := func(reason string) {
		if err := a.once(ctx, stdin); err != nil {
			a.log.Warn("recount failed", "reason", reason, "err", err)
		}
	}

	if a.loader != nil {
		a.loader.OnChange(func(cfg *config.Config) {
			a.level.Set(parseLevel(cfg.Log.Level))
			a.log.Info("config reloaded", "strategy", cfg.Counter.Strategy)
			recount("config")
		})
		stop, err := a.loader.Watch()
		if err != nil {
			a.log.Warn("config watcher unavailable (hot-reload disabled)", "err", err)
		} else {
			a.closers = append(a.closers, stop)
		}
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("input watcher: %w", err)
	}
	defer w.Close()
	// Watch the directory so editors that replace the file are still seen.
	if err = w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("input watcher add %s: %w", path, err)
	}

	recount("start")
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				recount(ev.Op.String())
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			a.log.Warn("input watcher error", "err", err)
		}
	}
}
