package worker

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/RoleplayBot_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// Pool represents a worker pool
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker is the worker loop
func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.quit:
			return
		}
	}
}

// run processes one job. A failing or panicking job is logged and never
// takes the worker down.
func (p *Pool) run(job Job) {
	log := logger.FromContext(p.ctx)
	defer func() {
		if r := recover(); r != nil {
			log.Error(LogMsgWorkerJobPanic, "job", fmt.Sprintf("%T", job), "panic", r)
		}
	}()
	if err := job.Process(p.ctx); err != nil {
		log.Error(LogMsgWorkerJobFailed, "job", fmt.Sprintf("%T", job), "error", err)
	}
}

// Enqueue adds a job without blocking. It reports false when the queue is
// full; periodic jobs simply run on the next tick.
func (p *Pool) Enqueue(job Job) bool {
	select {
	case p.jobQueue <- job:
		return true
	default:
		logger.FromContext(p.ctx).Warn(LogMsgJobDropped, "job", fmt.Sprintf("%T", job))
		return false
	}
}

// Stop stops the workers and waits for running jobs to finish. Queued
// jobs that have not started are discarded.
func (p *Pool) Stop() {
	close(p.quit)
	p.wg.Wait()
	p.cancel()
}
