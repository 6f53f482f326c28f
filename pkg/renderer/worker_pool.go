package renderer

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// WorkerPool keeps render goroutines alive between frames so interactive
// sessions do not spawn a new set of goroutines for every frame
type WorkerPool struct {
	pool       worker.DynamicWorkerPool
	numWorkers int

	mu        sync.Mutex
	nextID    int
	closed    bool
	closeOnce sync.Once
}

// Queue capacity of the pool; a frame submits one task per band
const workerQueueSize = 1024

// workerIdleTimeout is how long an idle worker lingers before exiting
const workerIdleTimeout = 2 * time.Second

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		pool:       worker.NewDynamicWorkerPool(numWorkers, workerQueueSize, workerIdleTimeout),
		numWorkers: numWorkers,
	}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// NewBatch implements Executor
func (wp *WorkerPool) NewBatch() Batch {
	return &poolBatch{owner: wp}
}

// Close stops the workers. Batches used after Close run their tasks on the
// calling goroutine. Close may be called more than once but must not race
// with a frame in flight.
func (wp *WorkerPool) Close() {
	wp.closeOnce.Do(func() {
		wp.mu.Lock()
		wp.closed = true
		wp.mu.Unlock()
		wp.pool.Stop()
	})
}

// submit queues run on the pool and reports false once the pool is closed
func (wp *WorkerPool) submit(run func() (any, error)) bool {
	wp.mu.Lock()
	defer wp.mu.Unlock()
	if wp.closed {
		return false
	}
	wp.nextID++
	wp.pool.SubmitTask(worker.Task{ID: wp.nextID, Do: run})
	return true
}

// poolBatch is a per-frame barrier over the shared pool
type poolBatch struct {
	owner *WorkerPool
	wg    sync.WaitGroup

	mu       sync.Mutex
	firstErr error
}

// Go submits a task to the pool
func (b *poolBatch) Go(task func() error) {
	b.wg.Add(1)
	run := func() (any, error) {
		defer b.wg.Done()
		err := task()
		if err != nil {
			b.mu.Lock()
			if b.firstErr == nil {
				b.firstErr = err
			}
			b.mu.Unlock()
		}
		return nil, err
	}
	if !b.owner.submit(run) {
		run()
	}
}

// Wait blocks until every submitted task has finished
func (b *poolBatch) Wait() error {
	b.wg.Wait()
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.firstErr
}
