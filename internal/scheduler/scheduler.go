package scheduler

import (
	"sync"
	"time"

	"github.com/osse101/RoleplayBot_Go/internal/worker"
)

// Scheduler manages scheduled jobs
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule enqueues job on the worker pool every interval until Stop.
// A tick that finds the queue full is skipped.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.workerPool.Enqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
