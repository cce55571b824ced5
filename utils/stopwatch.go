package utils

import (
	"sync"
	"time"

	"github.com/ScottSallinen/rmq/enforce"
)

// Watch measures wall time. Paused intervals are excluded from Elapsed but not from AbsoluteElapsed.
type Watch struct {
	mu           sync.RWMutex
	paused       bool
	pauseTime    time.Time
	startTime    time.Time
	adjustedTime time.Time
	lapTime      time.Time
}

func (w *Watch) Start() {
	w.mu.Lock()
	if w.paused {
		w.mu.Unlock()
		enforce.FAIL("watch cant start because paused")
	}
	w.startTime = time.Now()
	w.adjustedTime = w.startTime
	w.lapTime = w.startTime
	w.mu.Unlock()
}

func (w *Watch) Elapsed() time.Duration {
	w.mu.RLock()
	defer w.mu.RUnlock()
	mNow := time.Now()
	if w.paused {
		return mNow.Sub(w.adjustedTime) - mNow.Sub(w.pauseTime)
	}
	return mNow.Sub(w.adjustedTime)
}

func (w *Watch) AbsoluteElapsed() time.Duration {
	w.mu.RLock()
	mStart := w.startTime
	w.mu.RUnlock()
	return time.Since(mStart)
}

// Lap returns the absolute time since the previous Lap (or Start), and begins a new lap.
func (w *Watch) Lap() time.Duration {
	w.mu.Lock()
	mNow := time.Now()
	lap := mNow.Sub(w.lapTime)
	w.lapTime = mNow
	w.mu.Unlock()
	return lap
}

// Pause returns the currently elapsed (unpaused) time.
func (w *Watch) Pause() time.Duration {
	w.mu.Lock()
	if w.paused {
		w.mu.Unlock()
		enforce.FAIL("watch already paused")
	}
	w.pauseTime = time.Now()
	w.paused = true
	elapsed := w.pauseTime.Sub(w.adjustedTime)
	w.mu.Unlock()
	return elapsed
}

func (w *Watch) UnPause() {
	w.mu.Lock()
	if !w.paused {
		w.mu.Unlock()
		enforce.FAIL("watch wasn't paused")
	}
	w.paused = false
	w.adjustedTime = w.adjustedTime.Add(time.Since(w.pauseTime))
	w.mu.Unlock()
}
