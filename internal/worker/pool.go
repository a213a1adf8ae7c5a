// Package worker provides a worker pool for replaying games in parallel.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// WorkItem is one game to replay, given as coordinate moves.
type WorkItem struct {
	ID    uint64   // Archive ID, 0 when the game is not archived
	Index int      // Position in the submitted batch
	Moves []string // Coordinate moves such as "e2e4" or "e7e8q"
}

// ProcessResult is the outcome of replaying one work item.
type ProcessResult struct {
	ID               uint64
	Index            int
	Outcome          engine.Outcome
	Plies            int    // Moves applied before the replay stopped
	FinalFingerprint string // Position after the last applied move
	Duplicate        bool   // Another game in the batch ended in the same position
	Skipped          bool   // Never replayed because the pool was stopped
	Error            error  // First rejected move, as *errors.MoveError
}

// ProcessFunc replays a single work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a pool of workers replaying games.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPoolWithOptions creates a worker pool using functional options.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item. It blocks while the work channel is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to skip the items still queued. It is safe to call
// from a ProcessFunc.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish,
// then closes the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// Run starts the pool, feeds it every item and returns the results ordered
// by item Index. Indices must be 0..len(items)-1. Once Stop is called no
// further items are fed, and items that were never processed come back with
// Skipped set. The pool cannot be reused.
func (p *Pool) Run(items []WorkItem) []ProcessResult {
	results := make([]ProcessResult, len(items))
	for i, item := range items {
		results[i] = ProcessResult{ID: item.ID, Index: i, Skipped: true}
	}

	p.Start()
	go func() {
		for _, item := range items {
			if p.IsStopped() {
				break
			}
			p.Submit(item)
		}
		p.Close()
	}()

	for res := range p.Results() {
		if res.Index >= 0 && res.Index < len(results) {
			results[res.Index] = res
		}
	}
	return results
}
