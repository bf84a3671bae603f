package parallel

import (
	"sync/atomic"
	"testing"
)

func TestRunBlockingCompletesAllTasks(t *testing.T) {
	p := New(4)
	defer p.Close()

	var counter int64
	tasks := make([]Task, 0, 100)
	for i := 0; i < 100; i++ {
		tasks = append(tasks, func() { atomic.AddInt64(&counter, 1) })
	}

	p.RunBlocking(tasks)

	if got := atomic.LoadInt64(&counter); got != 100 {
		t.Fatalf("counter = %d, want 100", got)
	}
}

func TestRunBlockingEmpty(t *testing.T) {
	p := New(2)
	defer p.Close()
	p.RunBlocking(nil)
}
