// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package restart

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRunWithRestartReturnsServerResult(t *testing.T) {
	m := NewManager(":0")
	wantErr := errors.New("boom")

	err := m.RunWithRestart(context.Background(), func(_ context.Context, _ string, _ <-chan struct{}) error {
		return wantErr
	}, nil)

	if err == nil || !errors.Is(err, wantErr) {
		t.Fatalf("got %v, want wrapped %v", err, wantErr)
	}
}

func TestRunWithRestartReloadsOnRestart(t *testing.T) {
	m := NewManager(":0")
	reloaded := make(chan struct{}, 1)
	var iterations int

	done := make(chan error, 1)
	go func() {
		done <- m.RunWithRestart(context.Background(), func(_ context.Context, _ string, shutdown <-chan struct{}) error {
			iterations++
			if iterations == 1 {
				<-shutdown
				return nil
			}
			return nil
		}, func() error {
			reloaded <- struct{}{}
			return nil
		})
	}()

	// Give the first instance a moment to start before restarting it.
	time.Sleep(20 * time.Millisecond)
	m.Restart()

	select {
	case <-reloaded:
	case <-time.After(2 * time.Second):
		t.Fatal("reload was not invoked after restart")
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("RunWithRestart did not complete after second instance returned")
	}

	if iterations != 2 {
		t.Fatalf("expected 2 server instances, got %d", iterations)
	}
}

func TestRestartCoalesces(t *testing.T) {
	m := NewManager(":0")
	m.Restart()
	m.Restart()
	m.Restart()

	select {
	case <-m.restartCh:
	default:
		t.Fatal("expected a pending restart notification")
	}
	select {
	case <-m.restartCh:
		t.Fatal("multiple restarts during one cycle should coalesce into one")
	default:
	}
}
