package renderer

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestWorkerPool_RunsEveryTask(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()
	if pool.GetNumWorkers() != 4 {
		t.Errorf("Expected 4 workers, got %d", pool.GetNumWorkers())
	}

	var done atomic.Int32
	batch := pool.NewBatch()
	for i := 0; i < 50; i++ {
		batch.Go(func() error {
			done.Add(1)
			return nil
		})
	}
	if err := batch.Wait(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := done.Load(); got != 50 {
		t.Errorf("Expected 50 tasks to run, got %d", got)
	}
}

func TestWorkerPool_ReturnsFirstError(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	errBand := errors.New("band failed")
	batch := pool.NewBatch()
	batch.Go(func() error { return nil })
	batch.Go(func() error { return errBand })
	if err := batch.Wait(); !errors.Is(err, errBand) {
		t.Errorf("Expected %v, got %v", errBand, err)
	}
}

func TestWorkerPool_CloseIsIdempotent(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()

	// Frames after Close still complete, on the calling goroutine
	rt := newTestRayTracer()
	rt.SetExecutor(pool)
	s := newFacingScene(t, 4, 4)
	fb := newFrameBuffer(t, 4, 4)
	if err := rt.RaytraceScene(fb, 0, s, 1); err != nil {
		t.Fatalf("Render after Close failed: %v", err)
	}
	if rt.LastStats().Bands != 2 {
		t.Errorf("Expected 2 bands, got %+v", rt.LastStats())
	}
}
