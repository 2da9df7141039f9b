package accel

import (
	"runtime"
	"sync"
)

// Pool executes units of work on a bounded set of worker goroutines. Tasks
// always run to completion; there is no cancellation and Wait blocks
// unconditionally until every pushed task has finished.
type Pool struct {
	tasks chan func()
	wg    sync.WaitGroup
}

// Create a worker pool. A non-positive worker count selects one worker per
// logical CPU.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	p := &Pool{
		tasks: make(chan func(), workers),
	}

	for i := 0; i < workers; i++ {
		go func() {
			for task := range p.tasks {
				task()
				p.wg.Done()
			}
		}()
	}

	return p
}

// Schedule a unit of work.
func (p *Pool) Push(task func()) {
	p.wg.Add(1)
	p.tasks <- task
}

// Block until every pushed task has completed. The pool can keep accepting
// work after Wait returns.
func (p *Pool) Wait() {
	p.wg.Wait()
}

// Shut down the workers. The pool must not be used after Close.
func (p *Pool) Close() {
	close(p.tasks)
}
