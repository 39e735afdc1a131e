package perk

// ==================== Error Messages ====================

const (
	ErrMsgEmptyPerkName     = "perk name must not be empty"
	ErrMsgNegativeBonusFmt  = "bonus must not be negative, got %d: %w"
	ErrMsgLoadPerksFailed   = "failed to load perks: %w"
	ErrMsgLoadMembersFailed = "failed to load members: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgPerkSaved          = "Perk saved"
	LogMsgPerkRemoved        = "Perk removed"
	LogMsgPayoutStarted      = "Perk payout started"
	LogMsgPayoutCompleted    = "Perk payout completed"
	LogMsgPayoutAborted      = "Perk payout aborted"
	LogMsgPayoutCancelled    = "Perk payout cancelled"
	LogMsgPayoutNoPerks      = "No perks configured, payout skipped"
	LogMsgMemberCreditFailed = "Failed to credit member"
)
