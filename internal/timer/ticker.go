package timer

import (
	"sync"
	"time"
)

// Ticker delivers one callback per interval between Start and Stop. It backs
// headless use of the Machine; the TUI drives ticks through bubbletea
// instead. time.Ticker drops ticks a slow receiver misses, so a stalled
// process resumes with single decrements rather than a fast-forward burst.
type Ticker struct {
	mu       sync.Mutex
	interval time.Duration
	stopCh   chan struct{}
	running  bool
}

// NewTicker creates a ticker; a non-positive interval defaults to one second.
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	return &Ticker{interval: interval}
}

// Start launches the delivery loop. Starting an already-running ticker is a
// no-op, so at most one loop is ever live.
func (t *Ticker) Start(fn func()) {
	t.mu.Lock()
	if t.running {
		t.mu.Unlock()
		return
	}
	t.running = true
	t.stopCh = make(chan struct{})
	stop := t.stopCh
	t.mu.Unlock()

	go t.run(stop, fn)
}

func (t *Ticker) run(stop chan struct{}, fn func()) {
	tick := time.NewTicker(t.interval)
	defer tick.Stop()
	for {
		select {
		case <-stop:
			return
		case <-tick.C:
			t.mu.Lock()
			if !t.running || stop != t.stopCh {
				t.mu.Unlock()
				return
			}
			fn()
			t.mu.Unlock()
		}
	}
}

// Stop halts delivery. Once Stop returns no further callback will run.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return
	}
	close(t.stopCh)
	t.running = false
}

// Running reports whether a delivery loop is live.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}
