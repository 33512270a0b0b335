package debounce

import (
	"sync"
	"time"
)

// Debouncer runs a fixed callback once input has settled for the delay.
type Debouncer struct {
	delay    time.Duration
	timer    *time.Timer
	mutex    sync.Mutex
	callback func()
}

// New creates a new debouncer that calls fn after delay of quiet.
func New(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{
		delay:    delay,
		callback: fn,
	}
}

// Trigger schedules the callback. Calling it again before the delay expires
// restarts the wait.
func (d *Debouncer) Trigger() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.delay, func() {
		d.mutex.Lock()
		d.timer = nil
		callback := d.callback
		d.mutex.Unlock()

		if callback != nil {
			callback()
		}
	})
}

// Cancel stops any pending call.
func (d *Debouncer) Cancel() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// IsActive returns true if there is a pending call
func (d *Debouncer) IsActive() bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	return d.timer != nil
}
