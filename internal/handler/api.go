package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/GrimArmory_Go/internal/domain"
	"github.com/osse101/GrimArmory_Go/internal/logger"
)

// LeaderboardSource ranks accounts by balance
type LeaderboardSource interface {
	GetLeaderboard(ctx context.Context, n int) ([]domain.LeaderboardEntry, error)
}

// AccountSource reads a single account
type AccountSource interface {
	GetAccount(ctx context.Context, userID string) (*domain.Account, error)
}

// CatalogSource serves the shop catalog
type CatalogSource interface {
	ListItems(ctx context.Context) ([]domain.CatalogItem, error)
	ListByCategory(ctx context.Context, categoryTag string) ([]domain.CatalogItem, error)
	GetItem(ctx context.Context, itemName string) (*domain.CatalogItem, error)
}

// HandleGetLeaderboard returns the top accounts; ?limit= overrides the default size
func HandleGetLeaderboard(svc LeaderboardSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		limit := 0
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			var err error
			limit, err = strconv.Atoi(limitStr)
			if err != nil || limit <= 0 {
				log.Warn(ErrMsgInvalidLimit, "limit", limitStr)
				respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
				return
			}
		}

		entries, err := svc.GetLeaderboard(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		log.Debug(LogMsgLeaderboardRetrieved, "entries", len(entries))
		respondJSON(w, http.StatusOK, DataResponse{Data: entries})
	}
}

// HandleGetAccount returns one account's balance, inventory and characters
func HandleGetAccount(svc AccountSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acct, err := svc.GetAccount(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: acct})
	}
}

// HandleListCatalog returns the catalog, optionally filtered by ?category=
func HandleListCatalog(svc CatalogSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			items []domain.CatalogItem
			err   error
		)
		if category := r.URL.Query().Get("category"); category != "" {
			items, err = svc.ListByCategory(r.Context(), category)
		} else {
			items, err = svc.ListItems(r.Context())
		}
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: items})
	}
}

// HandleGetCatalogItem returns a single catalog item by name
func HandleGetCatalogItem(svc CatalogSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := svc.GetItem(r.Context(), chi.URLParam(r, "itemName"))
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: item})
	}
}
