package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/osse101/GrimArmory_Go/internal/domain"
	"github.com/osse101/GrimArmory_Go/internal/logger"
	"github.com/osse101/GrimArmory_Go/internal/scheduler"
)

const payoutWorkerName = "perk payout worker"

// PayoutState is the lifecycle state of the perk payout worker
type PayoutState string

// Payout worker states. Cancelled is terminal.
const (
	PayoutIdle      PayoutState = "idle"
	PayoutWaiting   PayoutState = "waiting"
	PayoutRunning   PayoutState = "running"
	PayoutCancelled PayoutState = "cancelled"
)

// PayoutRunner executes one perk payout
type PayoutRunner func(ctx context.Context) (*domain.PayoutReport, error)

// PerkPayoutWorker runs the perk payout at every boundary of its schedule.
// Boundaries missed while the process was not running are skipped, and at
// most one payout runs at a time.
type PerkPayoutWorker struct {
	BaseWorker

	run      PayoutRunner
	schedule *scheduler.Schedule
	now      func() time.Time

	stateMu    sync.Mutex
	state      PayoutState
	lastTarget time.Time
	cancelRun  context.CancelFunc
}

// NewPerkPayoutWorker creates a worker in the idle state
func NewPerkPayoutWorker(run PayoutRunner, schedule *scheduler.Schedule) *PerkPayoutWorker {
	w := &PerkPayoutWorker{
		run:      run,
		schedule: schedule,
		now:      time.Now,
		state:    PayoutIdle,
	}
	w.init(payoutWorkerName)
	return w
}

// Start arms the timer for the next boundary
func (w *PerkPayoutWorker) Start() {
	w.stateMu.Lock()
	if w.state != PayoutIdle {
		w.stateMu.Unlock()
		return
	}
	w.state = PayoutWaiting
	w.stateMu.Unlock()

	w.scheduleNext()
}

// State returns the current lifecycle state
func (w *PerkPayoutWorker) State() PayoutState {
	w.stateMu.Lock()
	defer w.stateMu.Unlock()
	return w.state
}

// NextRun returns the boundary the pending timer is armed for
func (w *PerkPayoutWorker) NextRun() time.Time {
	w.stateMu.Lock()
	defer w.stateMu.Unlock()
	return w.lastTarget
}

func (w *PerkPayoutWorker) scheduleNext() {
	w.stateMu.Lock()
	defer w.stateMu.Unlock()
	if w.state == PayoutCancelled {
		return
	}

	// a timer may fire a hair before its boundary; never target the same boundary twice
	from := w.now()
	if from.Before(w.lastTarget) {
		from = w.lastTarget
	}
	next := w.schedule.Next(from)
	wait := next.Sub(w.now())
	w.lastTarget = next

	if !w.armAt(next, wait, w.fire) {
		return
	}

	logger.FromContext(context.Background()).Info(LogMsgPayoutScheduled, "next_run_at", next, "wait", wait)
}

func (w *PerkPayoutWorker) fire() {
	if w.stopping() {
		return
	}

	ctx := logger.WithNewRequestID(context.Background())
	if _, err := w.execute(ctx, TriggerSchedule); errors.Is(err, ErrPayoutInProgress) {
		logger.FromContext(ctx).Warn(LogMsgPayoutSkipped, "error", err)
	}
	w.scheduleNext()
}

// RunNow runs a payout immediately and returns its report. Shutdown cancels it.
func (w *PerkPayoutWorker) RunNow(ctx context.Context) (*domain.PayoutReport, error) {
	logger.FromContext(ctx).Info(LogMsgPayoutManualTrigger)
	return w.execute(ctx, TriggerManual)
}

func (w *PerkPayoutWorker) execute(ctx context.Context, trigger string) (*domain.PayoutReport, error) {
	w.stateMu.Lock()
	switch w.state {
	case PayoutCancelled:
		w.stateMu.Unlock()
		return nil, ErrWorkerStopped
	case PayoutRunning:
		w.stateMu.Unlock()
		return nil, ErrPayoutInProgress
	}
	prev := w.state
	runCtx, cancel := context.WithCancel(ctx)
	w.cancelRun = cancel
	w.state = PayoutRunning
	w.wg.Add(1)
	w.stateMu.Unlock()

	defer w.wg.Done()
	defer cancel()

	log := logger.FromContext(ctx)
	log.Info(LogMsgPayoutStarting, "trigger", trigger)
	started := time.Now()

	report, err := w.run(runCtx)

	w.stateMu.Lock()
	w.cancelRun = nil
	if w.state == PayoutRunning {
		w.state = prev
	}
	w.stateMu.Unlock()

	if err != nil {
		log.Error(LogMsgPayoutFailed, "trigger", trigger, "error", err)
		return nil, err
	}
	log.Info(LogMsgPayoutFinished,
		"trigger", trigger,
		"credited", len(report.Credited),
		"total", report.TotalCredited(),
		"cancelled", report.Cancelled,
		"duration", time.Since(started))
	return report, nil
}

// Shutdown cancels the pending timer and any in-flight payout, then waits for it to return
func (w *PerkPayoutWorker) Shutdown(ctx context.Context) error {
	w.stateMu.Lock()
	if w.state == PayoutCancelled {
		w.stateMu.Unlock()
		return nil
	}
	w.state = PayoutCancelled
	cancel := w.cancelRun
	w.stateMu.Unlock()

	if cancel != nil {
		cancel()
	}
	return w.shutdownInternal(ctx)
}
