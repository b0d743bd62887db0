// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package restart implements a graceful-restart loop around a server
// function: SIGHUP (or any configured signal) triggers a shutdown of
// the current server instance, a configuration reload, and a fresh
// instance bound to the same listen address.
package restart

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
)

// ServerFunc runs one server instance bound to addr until shutdown is
// closed, or it fails on its own.
type ServerFunc func(ctx context.Context, addr string, shutdown <-chan struct{}) error

// Manager coordinates shutdown and restart across server instances. The
// restart notification is level-like: multiple signal deliveries during
// one restart cycle collapse into a single restart.
type Manager struct {
	listenAddr string
	restartCh  chan struct{}

	mu         sync.Mutex
	shutdownCh chan struct{}
}

// NewManager creates a Manager bound to addr. No signal listener is
// installed until EnableRestartOnSignal is called.
func NewManager(addr string) *Manager {
	return &Manager{
		listenAddr: addr,
		restartCh:  make(chan struct{}, 1),
	}
}

// Restart fires the restart notification. Concurrent calls before the
// notification is consumed collapse into a single restart.
func (m *Manager) Restart() {
	select {
	case m.restartCh <- struct{}{}:
	default:
	}
}

// Shutdown closes the current server instance's shutdown channel, if
// one is running.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.shutdownCh != nil {
		close(m.shutdownCh)
		m.shutdownCh = nil
	}
}

// EnableRestartOnSignal spawns a goroutine that calls Restart on every
// delivery of any of sig (typically syscall.SIGHUP).
func (m *Manager) EnableRestartOnSignal(sig ...os.Signal) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sig...)
	go func() {
		for range ch {
			slog.Info("restart signal received, triggering restart")
			m.Restart()
		}
	}()
}

// RunWithRestart runs serverFn in a loop: a fresh shutdown channel is
// handed to each instance. On restart, the current instance is told to
// shut down, reload is invoked, and a new instance starts. On the
// server's own completion (success or error), that result is returned
// directly and the loop ends.
func (m *Manager) RunWithRestart(ctx context.Context, serverFn ServerFunc, reload func() error) error {
	for {
		m.mu.Lock()
		shutdown := make(chan struct{})
		m.shutdownCh = shutdown
		m.mu.Unlock()

		done := make(chan error, 1)
		slog.Info("starting server", "addr", m.listenAddr)
		go func() {
			done <- serverFn(ctx, m.listenAddr, shutdown)
		}()

		select {
		case <-m.restartCh:
			slog.Info("restart requested, stopping current server")
			m.Shutdown()
			if err := <-done; err != nil {
				slog.Warn("server stopped with error", "error", err)
			} else {
				slog.Info("server stopped gracefully")
			}

			slog.Info("reloading configuration")
			if reload != nil {
				if err := reload(); err != nil {
					slog.Warn("failed to reload configuration", "error", err)
				}
			}
			continue

		case err := <-done:
			if err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			slog.Info("server completed normally")
			return nil
		}
	}
}
