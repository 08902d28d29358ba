package config

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// reloadDebounce coalesces the burst of events editors emit on save.
const reloadDebounce = 250 * time.Millisecond

// Watch reloads the config file whenever it changes and reports the result
// to fn: either the new config or the load error. fn runs on a timer
// goroutine. Watch blocks until ctx is cancelled.
//
// The parent directory is watched rather than the file so that editors which
// replace the file on save keep triggering reloads.
func Watch(ctx context.Context, configPath string, fn func(*Config, error)) error {
	if configPath == "" {
		<-ctx.Done()
		return nil
	}

	dir := filepath.Dir(configPath)
	file := filepath.Base(configPath)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	debounce := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(reloadDebounce, func() {
			if ctx.Err() != nil {
				return
			}
			cfg, err := Load(configPath)
			fn(cfg, err)
		})
	}
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	log.Debug().Str("dir", dir).Str("file", file).Msg("config watcher started")

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !strings.EqualFold(filepath.Base(ev.Name), file) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				debounce()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			if err != nil {
				log.Warn().Err(err).Str("dir", dir).Msg("config watch error")
			}
		}
	}
}
