package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/GrimArmory_Go/internal/logger"
)

// BaseWorker arms one-shot timers keyed by the schedule boundary they fire
// for, and tracks in-flight executions so shutdown can wait for them.
type BaseWorker struct {
	name string

	mu       sync.Mutex
	timers   map[time.Time]*time.Timer
	shutdown chan struct{}
	closed   bool
	wg       sync.WaitGroup
}

func (w *BaseWorker) init(name string) {
	w.name = name
	w.timers = make(map[time.Time]*time.Timer)
	w.shutdown = make(chan struct{})
}

// armAt schedules fn at boundary. A boundary that is already armed, or any
// boundary after shutdown, is ignored and armAt reports false.
func (w *BaseWorker) armAt(boundary time.Time, wait time.Duration, fn func()) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return false
	}
	key := boundary.UTC()
	if _, armed := w.timers[key]; armed {
		return false
	}
	w.timers[key] = time.AfterFunc(wait, func() {
		w.mu.Lock()
		delete(w.timers, key)
		w.mu.Unlock()
		fn()
	})
	return true
}

func (w *BaseWorker) pendingTimers() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.timers)
}

func (w *BaseWorker) stopping() bool {
	select {
	case <-w.shutdown:
		return true
	default:
		return false
	}
}

// shutdownInternal disarms every pending boundary and waits for in-flight
// executions. Repeated calls return immediately.
func (w *BaseWorker) shutdownInternal(ctx context.Context) error {
	log := logger.FromContext(ctx).With("worker", w.name)

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.shutdown)
	for boundary, timer := range w.timers {
		if timer.Stop() {
			log.Info(LogMsgWorkerTimerCancelled, "boundary", boundary)
		}
	}
	w.timers = make(map[time.Time]*time.Timer)
	w.mu.Unlock()

	log.Info(LogMsgWorkerShuttingDown)
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgWorkerShutdownComplete)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgWorkerShutdownTimeout)
		return ctx.Err()
	}
}
