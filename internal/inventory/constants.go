package inventory

// Error messages
const (
	ErrMsgEmptyUserID         = "user id must not be empty"
	ErrMsgEmptyItemName       = "item name must not be empty"
	ErrMsgZeroDelta           = "quantity change must not be zero"
	ErrMsgNonPositiveQtyFmt   = "quantity must be positive, got %d: %w"
	ErrMsgItemNotInventoryFmt = "%s is not in the inventory: %w"
)

// Log messages
const (
	LogMsgInventoryAdjusted = "Inventory adjusted"
)
