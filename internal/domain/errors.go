package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Account errors
	ErrMsgAccountNotFound = "account not found"

	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Perk errors
	ErrMsgPerkNotFound = "perk not found"

	// Ledger errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInvalidAmount     = "invalid amount"
	ErrMsgSelfTransfer      = "cannot transfer crowns to yourself"

	// Profile errors
	ErrMsgDuplicateCharacter = "character already exists"

	// Input errors
	ErrMsgValidation = "validation failed"

	// Permission errors
	ErrMsgNotAdministrator = "administrator clearance required"

	// Database/System errors
	ErrMsgStore  = "store error"
	ErrMsgImport = "import error"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrAccountNotFound = errors.New(ErrMsgAccountNotFound)
	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrPerkNotFound    = errors.New(ErrMsgPerkNotFound)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)
	ErrSelfTransfer      = errors.New(ErrMsgSelfTransfer)

	ErrDuplicateCharacter = errors.New(ErrMsgDuplicateCharacter)
	ErrValidation         = errors.New(ErrMsgValidation)
	ErrNotAdministrator   = errors.New(ErrMsgNotAdministrator)

	// ErrStore wraps any I/O or constraint failure from the persistence layer.
	ErrStore = errors.New(ErrMsgStore)
	// ErrImport marks a malformed catalog or account export file.
	ErrImport = errors.New(ErrMsgImport)
)

// UserMessage turns an error into a plain sentence safe to show to any chat user.
// Store and unexpected errors collapse to a generic line so no internal detail leaks.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInsufficientFunds):
		return "You do not have enough Crowns for that."
	case errors.Is(err, ErrInvalidAmount):
		return "The amount must be a positive number."
	case errors.Is(err, ErrSelfTransfer):
		return "You cannot give Crowns to yourself."
	case errors.Is(err, ErrAccountNotFound):
		return "Your data does not exist yet. Start chatting to earn Crowns!"
	case errors.Is(err, ErrItemNotFound):
		return "That item could not be found."
	case errors.Is(err, ErrPerkNotFound):
		return "That perk could not be found."
	case errors.Is(err, ErrDuplicateCharacter):
		return "A character with that name is already on your profile."
	case errors.Is(err, ErrValidation):
		return "That input doesn't look right. Please check the syntax and try again."
	case errors.Is(err, ErrNotAdministrator):
		return "You do not have the required clearance to use this command."
	default:
		return "An error occurred! Better poke an admin."
	}
}
