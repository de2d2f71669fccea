package gesture

import "time"

// Timer is the handle to a scheduled deferred task.
type Timer interface {
	// Stop cancels the task. It reports whether the task was still
	// pending; false means it already fired or was already stopped.
	Stop() bool
}

// Scheduler schedules cancellable deferred tasks. The engine owns two
// of them: the long-press timer and the double-click-zoom debounce.
// Injecting the scheduler keeps the state machine deterministic under
// test; the system implementation wraps time.AfterFunc.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type systemScheduler struct{}

func (systemScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// SystemScheduler returns a Scheduler backed by real wall-clock timers.
func SystemScheduler() Scheduler {
	return systemScheduler{}
}
