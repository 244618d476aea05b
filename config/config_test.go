package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 21, cfg.LookbackDays)
	assert.Equal(t, 10000.0, cfg.PitchSampleStepSecs)
	assert.Equal(t, 400.0, cfg.DwellReacquireWindowSecs)
	assert.Equal(t, "noop", cfg.MetricsBackend)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadMissingFileFallsBackToDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().LookbackDays, cfg.LookbackDays)
}

func TestLoadParsesYAMLAndStampsChecksum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lookback_days: 30\nmetrics_backend: prometheus\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.LookbackDays)
	assert.Equal(t, "prometheus", cfg.MetricsBackend)
	assert.NotEmpty(t, cfg.Checksum)
}

func TestLoadMalformedYAMLReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lookback_days: [this is not an int"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestChecksumDiffersOnlyWhenContentChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lookback_days: 21\n"), 0o644))
	cfg1, err := Load(path)
	require.NoError(t, err)

	cfg2, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg1.Checksum, cfg2.Checksum)

	require.NoError(t, os.WriteFile(path, []byte("lookback_days: 22\n"), 0o644))
	cfg3, err := Load(path)
	require.NoError(t, err)
	assert.NotEqual(t, cfg1.Checksum, cfg3.Checksum)
}

func TestWatcherDeliversChangeOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lookback_days: 21\n"), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	changes, errs := w.Watch(ctx)

	require.NoError(t, os.WriteFile(path, []byte("lookback_days: 45\n"), 0o644))

	select {
	case c := <-changes:
		require.NotNil(t, c.Config)
		assert.Equal(t, 45, c.Config.LookbackDays)
	case err := <-errs:
		t.Fatalf("unexpected watcher error: %v", err)
	case <-time.After(4 * time.Second):
		t.Fatal("timed out waiting for config change notification")
	}
}

func TestWatchCalledTwiceClosesSecondCallImmediately(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lookback_days: 21\n"), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Stop()

	ctx := context.Background()
	_, _ = w.Watch(ctx)

	changes, errs := w.Watch(ctx)
	_, chOk := <-changes
	_, errOk := <-errs
	assert.False(t, chOk)
	assert.False(t, errOk)
}

func TestStopOnUnwatchedWatcherIsNoop(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.NoError(t, w.Stop())
}
