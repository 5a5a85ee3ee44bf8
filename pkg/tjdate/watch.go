package tjdate

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jlrickert/cli-toolkit/toolkit"

	"github.com/jlrickert/tjdate/pkg/internal"
)

// configDebounce collapses the burst of events editors emit per save.
const configDebounce = 120 * time.Millisecond

// WatchConfig calls onChange with the re-read config (or the read error)
// each time the file at path changes. It blocks until ctx is done and
// returns ctx.Err(). The parent directory is watched so that editors which
// replace the file on save are followed.
func WatchConfig(ctx context.Context, rt *toolkit.Runtime, path string, onChange func(*Config, error)) error {
	if onChange == nil {
		return fmt.Errorf("change callback is required")
	}
	lg := rt.Logger()

	abs, err := rt.ResolvePath(path, false)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	host, err := internal.HostPath(rt, abs)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	if err := watcher.Add(filepath.Dir(host)); err != nil {
		return fmt.Errorf("watch config directory: %w", err)
	}
	lg.Debug("watching config", "path", abs, "host", host)

	var (
		pending     bool
		pendingFrom time.Time
	)
	ticker := time.NewTicker(configDebounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if pending && time.Since(pendingFrom) >= configDebounce {
				pending = false
				cfg, err := ReadConfig(rt, abs)
				onChange(cfg, err)
			}
		case event, ok := <-watcher.Events:
			if !ok {
				continue
			}
			if filepath.Clean(event.Name) != host {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				pending = true
				pendingFrom = time.Now()
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				continue
			}
			lg.Warn("config watcher error", "err", watchErr)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

