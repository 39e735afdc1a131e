package economy

// MaxPurchaseQuantity caps a single shop purchase
const MaxPurchaseQuantity = 100

// ==================== Error Messages ====================

// Formatted error messages for validation
const (
	ErrMsgInvalidQuantityFmt    = "invalid quantity: %d: %w"
	ErrMsgQuantityExceedsMaxFmt = "quantity %d exceeds maximum allowed (%d): %w"
	ErrMsgCostOverflowFmt       = "cost of %d x %d overflows: %w"
	ErrMsgEmptyUserID           = "user id must not be empty"
	ErrMsgEmptyItemName         = "item name must not be empty"
)

// Formatted error messages for purchases
const (
	ErrMsgResolveItemFailedFmt = "failed to resolve item '%s': %w"
	ErrMsgCannotAffordFmt      = "%d x %s costs %d, balance is %d: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgBuyItemCalled    = "BuyItem called"
	LogMsgItemPurchased    = "Item purchased"
	LogMsgPurchaseRejected = "Purchase rejected"
)
