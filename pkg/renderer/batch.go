package renderer

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Batch runs the band tasks of one frame. Wait blocks until every task has
// finished and returns the first error any of them reported.
type Batch interface {
	Go(task func() error)
	Wait() error
}

// Executor creates a fresh batch for each frame
type Executor interface {
	NewBatch() Batch
}

// GroupExecutor runs each frame on an errgroup with at most Limit concurrent bands
type GroupExecutor struct {
	Limit int
}

// NewGroupExecutor creates an executor bounded to limit concurrent bands
func NewGroupExecutor(limit int) *GroupExecutor {
	return &GroupExecutor{Limit: limit}
}

// NewBatch implements Executor
func (e *GroupExecutor) NewBatch() Batch {
	g := new(errgroup.Group)
	if e.Limit > 0 {
		g.SetLimit(e.Limit)
	}
	return g
}

// safeTask converts a panic inside task into an error
func safeTask(name string, task func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%s panicked: %v", name, r)
			}
		}()
		return task()
	}
}
