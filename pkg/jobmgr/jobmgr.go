// Package jobmgr tracks named background jobs. Documentation generation
// is CPU/text-bound and must stay off the gateway handler goroutine, so
// commands offload it here; per-name uniqueness doubles as a guard
// against duplicate concurrent generations for the same target.
package jobmgr

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// Job is one running unit of work.
type Job struct {
	Name   string
	Cancel context.CancelFunc
}

// Manager starts, stops and tracks jobs. Safe for concurrent use.
type Manager struct {
	mu   sync.Mutex
	jobs map[string]*Job
}

func NewManager() *Manager {
	return &Manager{jobs: make(map[string]*Job)}
}

// StartAsync runs a job in its own goroutine and returns immediately.
// A second job with the same name is refused while the first runs.
// Jobs remove themselves on completion.
func (m *Manager) StartAsync(name string, runner func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(context.Background())

	m.mu.Lock()
	if _, exists := m.jobs[name]; exists {
		m.mu.Unlock()
		cancel()
		return fmt.Errorf("job %q is already running", name)
	}
	m.jobs[name] = &Job{Name: name, Cancel: cancel}
	m.mu.Unlock()

	go func() {
		defer func() {
			cancel()
			m.mu.Lock()
			delete(m.jobs, name)
			m.mu.Unlock()
		}()

		log.Debug().Str("job", name).Msg("job started")
		if err := runner(ctx); err != nil {
			log.Error().Err(err).Str("job", name).Msg("job failed")
			return
		}
		log.Debug().Str("job", name).Msg("job done")
	}()
	return nil
}

// Stop cancels a running job by name.
func (m *Manager) Stop(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[name]
	if !ok {
		return fmt.Errorf("no job named %q", name)
	}
	job.Cancel()
	return nil
}

// Running reports whether a job with the given name is active.
func (m *Manager) Running(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.jobs[name]
	return ok
}
