package threading

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkerPoolCreation(t *testing.T) {
	wp := NewWorkerPool(0)
	if wp.NumWorkers() != runtime.NumCPU() {
		t.Errorf("Expected %d workers, got %d", runtime.NumCPU(), wp.NumWorkers())
	}

	wp2 := NewWorkerPool(4)
	if wp2.NumWorkers() != 4 {
		t.Errorf("Expected 4 workers, got %d", wp2.NumWorkers())
	}
}

func TestWorkerPoolJobExecution(t *testing.T) {
	wp := NewWorkerPool(2)
	wp.Start()
	defer wp.Stop()

	var counter int32
	for i := 0; i < 10; i++ {
		wp.Submit(func() {
			atomic.AddInt32(&counter, 1)
		})
	}
	wp.Wait()

	if counter != 10 {
		t.Errorf("Expected counter to be 10, got %d", counter)
	}
}

func TestWorkerPoolParallelFor(t *testing.T) {
	wp := NewWorkerPool(3)
	wp.Start()
	defer wp.Stop()

	var results [10]int32
	wp.ParallelFor(0, 10, func(i int) {
		atomic.StoreInt32(&results[i], int32(i*2))
		time.Sleep(time.Millisecond)
	})

	for i := 0; i < 10; i++ {
		if got := atomic.LoadInt32(&results[i]); got != int32(i*2) {
			t.Errorf("Expected results[%d] = %d, got %d", i, i*2, got)
		}
	}

	// Empty range returns immediately.
	wp.ParallelFor(5, 5, func(int) { t.Error("fn called for empty range") })
}

func TestWorkerPoolCancelledContext(t *testing.T) {
	wp := NewWorkerPool(2)
	wp.Start()
	defer wp.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls int32
	wp.ParallelForWithContext(ctx, 0, 100, func(int) {
		atomic.AddInt32(&calls, 1)
	})
	wp.SubmitWithContext(ctx, func() { atomic.AddInt32(&calls, 1) })
	wp.Wait()

	if calls != 0 {
		t.Errorf("Expected no calls after cancel, got %d", calls)
	}
}

func TestWorkerPoolConcurrentAccess(t *testing.T) {
	wp := NewWorkerPool(4)
	wp.Start()
	defer wp.Stop()

	var counter int64
	numGoroutines := 10
	jobsPerGoroutine := 50

	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < jobsPerGoroutine; j++ {
				wp.Submit(func() {
					atomic.AddInt64(&counter, 1)
				})
			}
		}()
	}

	wg.Wait()
	wp.Wait()

	expected := int64(numGoroutines * jobsPerGoroutine)
	if atomic.LoadInt64(&counter) != expected {
		t.Errorf("Expected counter to be %d, got %d", expected, counter)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	wp := NewWorkerPool(1)
	wp.Start()
	wp.Start()
	wp.Stop()
	wp.Stop()
}
