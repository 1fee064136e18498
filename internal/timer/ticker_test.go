package timer

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestTickerDeliversAndStops(t *testing.T) {
	var count atomic.Int64
	tk := NewTicker(5 * time.Millisecond)
	got := make(chan struct{}, 64)
	tk.Start(func() {
		count.Add(1)
		select {
		case got <- struct{}{}:
		default:
		}
	})

	// Wait for at least two deliveries.
	for i := 0; i < 2; i++ {
		select {
		case <-got:
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for tick %d", i+1)
		}
	}

	tk.Stop()
	settled := count.Load()
	time.Sleep(50 * time.Millisecond)
	if count.Load() != settled {
		t.Fatalf("callback ran after Stop: %d -> %d", settled, count.Load())
	}
	if tk.Running() {
		t.Fatalf("ticker should report stopped")
	}
}

func TestTickerStartIsIdempotent(t *testing.T) {
	var count atomic.Int64
	tk := NewTicker(5 * time.Millisecond)
	tk.Start(func() { count.Add(1) })
	// A second Start must not spawn a second loop (double-decrement defect).
	tk.Start(func() { count.Add(100) })
	defer tk.Stop()

	time.Sleep(40 * time.Millisecond)
	if n := count.Load(); n >= 100 {
		t.Fatalf("second Start spawned a loop: count=%d", n)
	}
	if n := count.Load(); n == 0 {
		t.Fatalf("first loop never delivered")
	}
}

func TestTickerStopIdempotentAndRestartable(t *testing.T) {
	tk := NewTicker(5 * time.Millisecond)
	tk.Stop() // stopping a stopped ticker is a no-op
	var count atomic.Int64
	tk.Start(func() { count.Add(1) })
	tk.Stop()
	tk.Stop()

	tk.Start(func() { count.Add(1) })
	defer tk.Stop()
	deadline := time.Now().Add(time.Second)
	start := count.Load()
	for count.Load() == start {
		if time.Now().After(deadline) {
			t.Fatalf("restarted ticker never delivered")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestTickerDefaultsInterval(t *testing.T) {
	tk := NewTicker(0)
	if tk.interval != time.Second {
		t.Fatalf("zero interval should default to 1s, got %v", tk.interval)
	}
}
