package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/GrimArmory_Go/internal/domain"
)

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidLimit         = "Invalid limit parameter"
	ErrMsgGetLeaderboardFailed = "Failed to retrieve leaderboard"
	ErrMsgGetAccountFailed     = "Failed to retrieve account"
	ErrMsgGetCatalogFailed     = "Failed to retrieve catalog"
	ErrMsgAccountNotFoundHTTP  = "Account not found"
	ErrMsgItemNotFoundHTTP     = "Item not found"
	ErrMsgGenericServerError   = "Something went wrong"
	ErrMsgDatabaseUnavailable  = "database connection failed"
	LogMsgReadinessCheckFailed = "Readiness check failed"
	LogMsgLeaderboardRetrieved = "Leaderboard retrieved"
	LogMsgEncodeResponseFailed = "Failed to encode JSON response"
	LogMsgWriteResponseFailed  = "Failed to write response buffer"
	LogMsgRequestFailed        = "Request failed"
)

// mapServiceError maps domain errors to an HTTP status and a message safe to return
func mapServiceError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, ErrMsgAccountNotFoundHTTP
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundHTTP
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, domain.UserMessage(err)
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}
