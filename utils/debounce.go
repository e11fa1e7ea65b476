package utils

import (
	"sync"
	"time"
)

// DebounceWindow is how long input must stay quiet before a search fires.
const DebounceWindow = 300 * time.Millisecond

// Debouncer delays a query callback until input quiesces. Every Trigger
// restarts the window, so the callback fires at most once per quiet period
// and always with the last value seen.
type Debouncer struct {
	mu      sync.Mutex
	window  time.Duration
	fn      func(string)
	timer   *time.Timer
	stopped bool
}

// NewDebouncer wraps fn. A non-positive window falls back to the default.
func NewDebouncer(window time.Duration, fn func(string)) *Debouncer {
	if window <= 0 {
		window = DebounceWindow
	}
	return &Debouncer{window: window, fn: fn}
}

// Trigger (re)starts the quiet window with the given query.
func (d *Debouncer) Trigger(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		if d.stopped {
			d.mu.Unlock()
			return
		}
		d.mu.Unlock()
		d.fn(query)
	})
}

// Stop cancels any pending invocation. After Stop the debouncer never fires
// again, even if the timer already expired concurrently.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
