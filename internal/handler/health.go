package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// ReadinessTimeout bounds the store ping behind /readyz
const ReadinessTimeout = 2 * time.Second

const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// HealthResponse is the body of /healthz and /readyz
type HealthResponse struct {
	Status string `json:"status"`
	// Store reports the SQLite store state on readiness checks only
	Store   string `json:"store,omitempty"`
	Message string `json:"message,omitempty"`
}

// Pinger is satisfied by *sqlx.DB and *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HandleHealthz reports liveness; it never touches the store
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleReadyz reports ready only while the store answers a ping
func HandleReadyz(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), ReadinessTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			slog.Error(LogMsgReadinessCheckFailed, "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  StatusUnavailable,
				Store:   StatusUnavailable,
				Message: ErrMsgDatabaseUnavailable,
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK, Store: StatusOK})
	}
}
