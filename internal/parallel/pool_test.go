package parallel

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestExecuteAll_RunsEverything(t *testing.T) {
	p := NewPool(4)
	defer p.Close()

	const n = 1000
	var ran [n]atomic.Bool
	work := make([]func(), n)
	for i := 0; i < n; i++ {
		i := i
		work[i] = func() { ran[i].Store(true) }
	}
	p.ExecuteAll(work)

	for i := range ran {
		if !ran[i].Load() {
			t.Fatalf("work item %d never ran", i)
		}
	}
}

// TestExecuteAll_Barrier: ExecuteAll must not return before every item has
// finished, even ones still in flight on other workers.
func TestExecuteAll_Barrier(t *testing.T) {
	p := NewPool(4)
	defer p.Close()

	var completed atomic.Int64
	work := make([]func(), 64)
	for i := range work {
		work[i] = func() {
			runtime.Gosched()
			completed.Add(1)
		}
	}
	p.ExecuteAll(work)
	if got := completed.Load(); got != 64 {
		t.Errorf("ExecuteAll returned with %d of 64 items complete", got)
	}
}

func TestExecuteAll_MoreWorkThanQueueCapacity(t *testing.T) {
	p := NewPool(2) // queue capacity 8, far less than the work below
	defer p.Close()

	var completed atomic.Int64
	work := make([]func(), 500)
	for i := range work {
		work[i] = func() { completed.Add(1) }
	}
	p.ExecuteAll(work)
	if got := completed.Load(); got != 500 {
		t.Errorf("%d of 500 items complete", got)
	}
}

func TestExecuteAll_Empty(t *testing.T) {
	p := NewPool(2)
	defer p.Close()
	p.ExecuteAll(nil) // must not block or panic
}

func TestClose_Idempotent(t *testing.T) {
	p := NewPool(2)
	p.Close()
	p.Close()
}

func TestExecuteAll_AfterClose(t *testing.T) {
	p := NewPool(2)
	p.Close()

	var ran atomic.Bool
	p.ExecuteAll([]func(){func() { ran.Store(true) }})
	if ran.Load() {
		t.Error("work executed on a closed pool")
	}
}

func TestNewPool_DefaultWorkers(t *testing.T) {
	p := NewPool(0)
	defer p.Close()
	if got, want := p.Workers(), runtime.GOMAXPROCS(0); got != want {
		t.Errorf("Workers() = %d, want %d", got, want)
	}
}
