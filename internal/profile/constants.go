package profile

// Character field limits
const (
	MaxNameLength  = 100
	MaxTitleLength = 200
	MaxURLLength   = 500
)

// SheetURLPattern is the minimal link shape accepted for character sheets:
// an optional http(s) scheme followed by a dotted domain.
const SheetURLPattern = `^(https?://)?([a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}`

// sheetURLTag is the validator tag registered for SheetURLPattern
const sheetURLTag = "sheeturl"

// Log messages
const (
	LogMsgCharacterAdded   = "Character added"
	LogMsgCharacterRemoved = "Characters removed"
)

// Error messages
const (
	ErrMsgDuplicateCharacterFmt = "%q: %w"
)
