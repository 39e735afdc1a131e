package worker

import "errors"

// ============================================================================
// Errors
// ============================================================================

var (
	// ErrPoolStopped is returned when enqueueing onto a stopped pool
	ErrPoolStopped = errors.New("worker pool stopped")
	// ErrPayoutInProgress is returned when a payout is requested while one is running
	ErrPayoutInProgress = errors.New("perk payout already in progress")
	// ErrWorkerStopped is returned when a payout is requested after shutdown
	ErrWorkerStopped = errors.New("perk payout worker stopped")
)

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// Worker lifecycle
const (
	LogMsgWorkerShuttingDown     = "Worker shutting down"
	LogMsgWorkerTimerCancelled   = "Cancelled pending scheduled run"
	LogMsgWorkerShutdownComplete = "Worker shutdown complete"
	LogMsgWorkerShutdownTimeout  = "Worker shutdown timed out"
)

// ============================================================================
// Log Messages - Perk Payout Worker
// ============================================================================

// Log messages for perk payout worker operations
const (
	LogMsgPayoutScheduled     = "Perk payout scheduled"
	LogMsgPayoutStarting      = "Perk payout starting"
	LogMsgPayoutFinished      = "Perk payout finished"
	LogMsgPayoutFailed        = "Perk payout failed"
	LogMsgPayoutSkipped       = "Scheduled perk payout skipped"
	LogMsgPayoutManualTrigger = "Perk payout manually triggered"
)

// Trigger labels for payout runs
const (
	TriggerSchedule = "schedule"
	TriggerManual   = "manual"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
