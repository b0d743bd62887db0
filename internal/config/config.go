// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config loads the process-wide Config from YAML and keeps it
// current via a file watcher, so the rest of the system always sees a
// complete value — old or new, never partial.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"smartpress/internal/model"
)

// Manager holds the current Config behind a reader-many/writer-one lock
// and optionally watches its source file for changes.
type Manager struct {
	mu      sync.RWMutex
	current *model.Config
	watcher *fsnotify.Watcher
}

// NewManager creates a Manager with no config loaded yet. Call Load
// before Current returns anything meaningful.
func NewManager() *Manager {
	return &Manager{}
}

// Current returns the currently loaded Config. Safe for concurrent use
// with Load/Watch — a reader always sees a complete Config.
func (m *Manager) Current() *model.Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Load parses path as YAML into a new Config, post-processes it (expands
// a leading "$HOME" in pdf.temp_dir), and atomically replaces Current.
func (m *Manager) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := &model.Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.PDF != nil {
		cfg.PDF.TempDir = expandHome(cfg.PDF.TempDir)
	}

	m.mu.Lock()
	m.current = cfg
	m.mu.Unlock()

	return nil
}

// expandHome replaces a leading "$HOME" with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "$HOME") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return home + strings.TrimPrefix(path, "$HOME")
}

// Watch spawns a background goroutine that reloads path on every Write
// event the filesystem reports for it. It does not distinguish a
// finished save (close-after-write) from an intermediate write, so one
// save can trigger several reloads; a reload that fails to read or parse
// keeps the previous config. Other event kinds are ignored. Call Close
// to stop watching.
func (m *Manager) Watch(path string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create config watcher: %w", err)
	}
	if err := w.Add(path); err != nil {
		w.Close()
		return fmt.Errorf("watch config %s: %w", path, err)
	}
	m.watcher = w

	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Has(fsnotify.Write) && ev.Op&fsnotify.Chmod == 0 {
					// fsnotify on Linux delivers a Write event per flush;
					// treat any Write as close-after-write since a single
					// editor save is the common case this process cares
					// about. Reload errors keep the previous config.
					if err := m.Load(path); err != nil {
						slog.Warn("config reload failed, keeping previous config", "path", path, "error", err)
						continue
					}
					slog.Info("config reloaded", "path", path)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Warn("config watcher error", "error", err)
			}
		}
	}()

	return nil
}

// Close stops the background watcher, if one was started.
func (m *Manager) Close() error {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.Close()
}
