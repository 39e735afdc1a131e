package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GrimArmory_Go/internal/domain"
)

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }

type stubLeaderboard struct{ entries []domain.LeaderboardEntry }

func (s stubLeaderboard) GetLeaderboard(_ context.Context, n int) ([]domain.LeaderboardEntry, error) {
	if n < len(s.entries) {
		return s.entries[:n], nil
	}
	return s.entries, nil
}

type stubAccounts struct{}

func (stubAccounts) GetAccount(_ context.Context, userID string) (*domain.Account, error) {
	if userID != "42" {
		return nil, domain.ErrAccountNotFound
	}
	return &domain.Account{UserID: "42", Balance: 77}, nil
}

type stubCatalog struct{}

func (stubCatalog) ListItems(context.Context) ([]domain.CatalogItem, error) {
	return []domain.CatalogItem{{ItemName: "Potion", Price: 5}}, nil
}

func (stubCatalog) ListByCategory(context.Context, string) ([]domain.CatalogItem, error) {
	return nil, nil
}

func (stubCatalog) GetItem(_ context.Context, name string) (*domain.CatalogItem, error) {
	return nil, domain.ErrItemNotFound
}

func newTestRouter(apiKey string, db error) http.Handler {
	return NewRouter(Options{APIKey: apiKey}, Deps{
		DB: stubPinger{err: db},
		Leaderboard: stubLeaderboard{entries: []domain.LeaderboardEntry{
			{UserID: "1", Balance: 300},
			{UserID: "2", Balance: 200},
		}},
		Accounts: stubAccounts{},
		Catalog:  stubCatalog{},
	})
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter("", nil)

	tests := []struct {
		path       string
		wantStatus int
	}{
		{"/healthz", http.StatusOK},
		{"/readyz", http.StatusOK},
		{"/version", http.StatusOK},
		{"/metrics", http.StatusOK},
		{"/api/v1/leaderboard?limit=1", http.StatusOK},
		{"/api/v1/leaderboard?limit=abc", http.StatusBadRequest},
		{"/api/v1/accounts/42", http.StatusOK},
		{"/api/v1/accounts/404", http.StatusNotFound},
		{"/api/v1/catalog/", http.StatusOK},
		{"/api/v1/catalog/Ghost", http.StatusNotFound},
		{"/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRouter_ReadyzReportsDatabaseFailure(t *testing.T) {
	router := newTestRouter("", errors.New("disk gone"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_RequiresKeyForAPI(t *testing.T) {
	router := newTestRouter("k", nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/accounts/42", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/42", nil)
	req.Header.Set(HeaderAPIKey, "k")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data domain.Account `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(77), body.Data.Balance)
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	h := loggingMiddleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "secret-key-123")
	assert.NotContains(t, out, "Bearer mytoken")
	assert.Contains(t, out, RedactedValue)
}
