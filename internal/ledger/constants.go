package ledger

// Leaderboard bounds
const (
	DefaultLeaderboardSize = 10
	MaxLeaderboardSize     = 100
)

// MessageGrantDivisor is the number of message characters worth one crown
const MessageGrantDivisor = 10

// ==================== Error Messages ====================

const (
	ErrMsgEmptyUserID           = "user id must not be empty"
	ErrMsgInvalidAmountFmt      = "amount must be positive, got %d: %w"
	ErrMsgInsufficientFundsFmt  = "balance %d cannot cover %d: %w"
	ErrMsgNegativeCreditFmt     = "credit of %d would leave balance at %d: %w"
	ErrMsgSenderNotFoundFmt     = "sender %s: %w"
	ErrMsgZeroAdjustment        = "adjustment must not be zero"
	ErrMsgNegativeMessageLenFmt = "message length must not be negative, got %d: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgAccountCreated    = "Account created"
	LogMsgCredited          = "Crowns credited"
	LogMsgDebited           = "Crowns debited"
	LogMsgTransferCompleted = "Crowns transferred"
	LogMsgTransferRejected  = "Transfer rejected"
	LogMsgBalanceAdjusted   = "Balance adjusted by administrator"
	LogMsgMessageGrant      = "Message grant applied"
)
