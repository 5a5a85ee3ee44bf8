package tjdate_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jlrickert/tjdate/pkg/tjdate"
	"github.com/stretchr/testify/require"
)

func TestWatchConfig_ReloadsOnWrite(t *testing.T) {
	t.Parallel()

	sb := NewSandbox(t)
	path := filepath.Join(testConfigDir, "config.yaml")
	sb.MustWriteFile(path, []byte("defaultFormat: \"${yyyy}\"\n"), 0o644)

	var (
		mu      sync.Mutex
		latest  *tjdate.Config
		lastErr error
	)
	ctx, cancel := context.WithCancel(sb.Context())
	done := make(chan error, 1)
	go func() {
		done <- tjdate.WatchConfig(ctx, sb.Runtime(), path, func(cfg *tjdate.Config, err error) {
			mu.Lock()
			defer mu.Unlock()
			latest, lastErr = cfg, err
		})
	}()

	// Give the watcher time to register before writing.
	require.Eventually(t, func() bool {
		_ = sb.WriteFile(path, []byte("defaultFormat: \"${mm}\"\n"), 0o644)
		mu.Lock()
		defer mu.Unlock()
		return latest != nil && latest.DefaultFormat == "${mm}"
	}, 5*time.Second, 200*time.Millisecond)

	require.Eventually(t, func() bool {
		_ = sb.WriteFile(path, []byte("placeholderPolicy: bogus\n"), 0o644)
		mu.Lock()
		defer mu.Unlock()
		return lastErr != nil && tjdate.IsInvalidConfig(lastErr)
	}, 5*time.Second, 200*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatchConfig_RequiresCallback(t *testing.T) {
	t.Parallel()
	sb := NewSandbox(t)
	require.Error(t, tjdate.WatchConfig(sb.Context(), sb.Runtime(), "config.yaml", nil))
}

func TestWatchConfig_MissingDirectory(t *testing.T) {
	t.Parallel()
	sb := NewSandbox(t)

	err := tjdate.WatchConfig(sb.Context(), sb.Runtime(), "/etc/tjdate/config.yaml", func(*tjdate.Config, error) {})
	require.Error(t, err)
	require.NotErrorIs(t, err, context.Canceled)
}
