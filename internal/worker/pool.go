package worker

import (
	"context"
	"sync"

	"github.com/osse101/GrimArmory_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to Job
type JobFunc func(ctx context.Context) error

// Process calls f(ctx)
func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// Pool represents a worker pool
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup

	mu      sync.RWMutex
	stopped bool
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker is the worker loop; it exits once the queue is closed and drained
func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.jobQueue {
		ctx := logger.WithNewRequestID(context.Background())
		if err := job.Process(ctx); err != nil {
			logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
		}
	}
}

// Enqueue adds a job to the queue, blocking while the queue is full.
// Returns ErrPoolStopped once Stop has been called.
func (p *Pool) Enqueue(job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrPoolStopped
	}
	p.jobQueue <- job
	return nil
}

// Stop refuses new jobs, lets the workers drain the queue and waits for them.
// It must only be called after Start.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobQueue)
	p.mu.Unlock()

	p.wg.Wait()
}
