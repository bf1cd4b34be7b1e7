package jobmgr

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartAsyncRefusesDuplicate(t *testing.T) {
	m := NewManager()

	release := make(chan struct{})
	started := make(chan struct{})
	err := m.StartAsync("job", func(ctx context.Context) error {
		close(started)
		<-release
		return nil
	})
	require.NoError(t, err)
	<-started

	assert.True(t, m.Running("job"))
	assert.Error(t, m.StartAsync("job", func(ctx context.Context) error { return nil }))

	close(release)
	waitStopped(t, m, "job")
	assert.NoError(t, m.StartAsync("job", func(ctx context.Context) error { return nil }))
}

func TestStopCancelsContext(t *testing.T) {
	m := NewManager()

	canceled := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, m.StartAsync("job", func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		close(canceled)
		return ctx.Err()
	}))
	<-started

	require.NoError(t, m.Stop("job"))
	select {
	case <-canceled:
	case <-time.After(2 * time.Second):
		t.Fatal("job context was not canceled")
	}

	assert.Error(t, m.Stop("missing"))
}

func waitStopped(t *testing.T, m *Manager, name string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for m.Running(name) {
		if time.Now().After(deadline) {
			t.Fatalf("job %q did not stop", name)
		}
		time.Sleep(5 * time.Millisecond)
	}
}
