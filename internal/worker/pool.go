// Package worker runs detail-page scans concurrently while keeping
// per-domain request rates polite.
package worker

import (
	"context"
	"sync"
)

// Job is a unit of crawl work.
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is the outcome of a job.
type Result interface {
	GetError() error
}

// Pool executes jobs across a fixed set of workers.
type Pool struct {
	workers    int
	jobQueue   chan Job
	results    chan Result
	wg         sync.WaitGroup
	ctx        context.Context
	cancelFunc context.CancelFunc
	closeOnce  sync.Once
}

// NewPool creates a pool with the specified number of workers.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		workers:    workers,
		jobQueue:   make(chan Job, workers*2),
		results:    make(chan Result, workers*2),
		ctx:        ctx,
		cancelFunc: cancel,
	}
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			result := job.Execute(p.ctx)
			select {
			case p.results <- result:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit queues a job for execution. A no-op after Shutdown.
func (p *Pool) Submit(job Job) {
	select {
	case <-p.ctx.Done():
		return
	case p.jobQueue <- job:
	}
}

// Results exposes the result stream for callers that drain while
// submission is still in progress. The channel closes after Close.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// Close signals that no more jobs are coming, waits for the workers to
// drain the queue and closes the result stream. Must not be called
// concurrently with Submit.
func (p *Pool) Close() {
	close(p.jobQueue)
	p.wg.Wait()
	p.closeResults()
}

// Wait closes the queue, waits for the workers to drain it and returns
// every result. The queue and result buffers are bounded, so a caller
// that submits more than a few jobs per worker must not defer draining
// to Wait: submit from a goroutine and range over Results instead.
func (p *Pool) Wait() []Result {
	go p.Close()

	var results []Result
	for result := range p.results {
		results = append(results, result)
	}

	return results
}

// Shutdown stops the pool immediately.
func (p *Pool) Shutdown() {
	p.cancelFunc()
	p.wg.Wait()
	p.closeResults()
}

func (p *Pool) closeResults() {
	p.closeOnce.Do(func() {
		close(p.results)
	})
}
