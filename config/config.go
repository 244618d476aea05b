// Package config loads the interpreter/event-detector deployment
// configuration from YAML and, optionally, watches it for changes so a
// long-running process can pick up new settings without restarting
// (SPEC_FULL.md §4.9). Adapted from the teacher's runtime configuration
// manager and hot-reload watcher, trimmed to the settings this module
// actually needs.
package config

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// Config is the full set of tunables for a kadistate deployment.
type Config struct {
	// LookbackDays is loaded from YAML; bootstrap.GetState0 takes its
	// lookback windows as an argument and does not read this value.
	LookbackDays int `yaml:"lookback_days"`
	// PitchSampleStepSecs is loaded from YAML; rules.PitchSampleStep is
	// a constant and is not changed by it.
	PitchSampleStepSecs float64 `yaml:"pitch_sample_step_secs"`
	// DwellReacquireWindowSecs is loaded from YAML; the event detector's
	// re-acquisition window is a constant and is not changed by it.
	DwellReacquireWindowSecs float64 `yaml:"dwell_reacquire_window_secs"`
	// MetricsBackend selects noop, prometheus or otel.
	MetricsBackend string `yaml:"metrics_backend"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	Checksum string `yaml:"-"`
}

// Default returns the built-in configuration used when no file is
// supplied.
func Default() *Config {
	return &Config{
		LookbackDays:             21,
		PitchSampleStepSecs:      10000,
		DwellReacquireWindowSecs: 400,
		MetricsBackend:           "noop",
		LogLevel:                 "info",
	}
}

// Load reads and parses a YAML config file, falling back to Default()
// if path does not exist.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.Checksum = checksum(cfg)
	return cfg, nil
}

func checksum(cfg *Config) string {
	cpy := *cfg
	cpy.Checksum = ""
	data, _ := json.Marshal(cpy)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%x", sum)
}

// Change is delivered on Watcher's channel whenever the on-disk config
// changes and differs (by checksum) from the last loaded value.
type Change struct {
	Config    *Config
	ChangedAt time.Time
}

// Watcher watches a single config file for writes and reloads it.
type Watcher struct {
	path       string
	watcher    *fsnotify.Watcher
	mu         sync.Mutex
	isWatching bool
}

// NewWatcher creates a Watcher for path (not yet watching).
func NewWatcher(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: create watcher: %w", err)
	}
	return &Watcher{path: path, watcher: w}, nil
}

// Watch starts watching the config file's directory for writes,
// delivering a Change each time the reloaded file's checksum differs
// from the previous one. The returned channels close when ctx is
// cancelled or Stop is called.
func (w *Watcher) Watch(ctx context.Context) (<-chan Change, <-chan error) {
	changes := make(chan Change, 10)
	errs := make(chan error, 10)

	w.mu.Lock()
	if w.isWatching {
		w.mu.Unlock()
		close(changes)
		close(errs)
		return changes, errs
	}
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		w.mu.Unlock()
		errs <- fmt.Errorf("config: watch dir %s: %w", dir, err)
		close(changes)
		close(errs)
		return changes, errs
	}
	w.isWatching = true
	w.mu.Unlock()

	go func() {
		defer close(changes)
		defer close(errs)
		var lastChecksum string
		for {
			select {
			case e, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if e.Name != w.path || e.Op&fsnotify.Write != fsnotify.Write {
					continue
				}
				cfg, err := Load(w.path)
				if err != nil {
					errs <- err
					continue
				}
				if cfg.Checksum != lastChecksum {
					lastChecksum = cfg.Checksum
					changes <- Change{Config: cfg, ChangedAt: time.Now()}
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				errs <- err
			case <-ctx.Done():
				return
			}
		}
	}()
	return changes, errs
}

// Stop closes the underlying file watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.isWatching {
		return nil
	}
	w.isWatching = false
	return w.watcher.Close()
}
