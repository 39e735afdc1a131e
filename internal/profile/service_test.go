package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GrimArmory_Go/internal/database/sqlite"
	"github.com/osse101/GrimArmory_Go/internal/domain"
	"github.com/osse101/GrimArmory_Go/internal/testing/dbtest"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	return NewService(sqlite.NewAccountRepository(dbtest.Open(t)), nil)
}

func TestIsValidSheetURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://docs.example.com/sheet/1", true},
		{"http://example.org", true},
		{"example.com", true},
		{"sub.domain.co.uk/path", true},
		{"ftp://example.com", false},
		{"localhost", false},
		{"not a url", false},
		{"", false},
		{"https://", false},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidSheetURL(tt.url))
		})
	}
}

func TestAddCharacter(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	chars, err := svc.AddCharacter(ctx, "u1", "Ayla", "Knight of Ash", "https://example.com/ayla")
	require.NoError(t, err)
	assert.Equal(t, []domain.Character{{Name: "Ayla", Title: "Knight of Ash", SheetURL: "https://example.com/ayla"}}, chars)

	t.Run("duplicate name rejected", func(t *testing.T) {
		_, err := svc.AddCharacter(ctx, "u1", "Ayla", "Other", "example.com")
		assert.ErrorIs(t, err, domain.ErrDuplicateCharacter)

		chars, err := svc.ListCharacters(ctx, "u1")
		require.NoError(t, err)
		assert.Len(t, chars, 1)
	})

	t.Run("bad url rejected before touching the store", func(t *testing.T) {
		_, err := svc.AddCharacter(ctx, "u2", "Bryn", "Scout", "nope")
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, err = svc.ListCharacters(ctx, "u2")
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := svc.AddCharacter(ctx, "u1", "  ", "Scout", "example.com")
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("order preserved", func(t *testing.T) {
		_, err := svc.AddCharacter(ctx, "u1", "Bryn", "Scout", "example.com")
		require.NoError(t, err)

		chars, err := svc.ListCharacters(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, chars, 2)
		assert.Equal(t, "Ayla", chars[0].Name)
		assert.Equal(t, "Bryn", chars[1].Name)
	})
}

func TestRemoveCharacter(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.AddCharacter(ctx, "u1", "Ayla", "Knight", "example.com")
	require.NoError(t, err)
	_, err = svc.AddCharacter(ctx, "u1", "Bryn", "Scout", "example.com")
	require.NoError(t, err)

	removed, err := svc.RemoveCharacter(ctx, "u1", "Ayla")
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	removed, err = svc.RemoveCharacter(ctx, "u1", "Ayla")
	require.NoError(t, err)
	assert.Equal(t, 0, removed)

	removed, err = svc.RemoveCharacter(ctx, "nobody", "Ayla")
	require.NoError(t, err)
	assert.Equal(t, 0, removed)

	chars, err := svc.ListCharacters(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []domain.Character{{Name: "Bryn", Title: "Scout", SheetURL: "example.com"}}, chars)
}

func TestRemoveCharacter_RemovesAllLegacyDuplicates(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	svc := NewService(sqlite.NewAccountRepository(db), nil)

	db.MustExecContext(ctx, `INSERT INTO accounts (user_id, characters) VALUES ('u1',
		'[{"name":"Ayla","title":"a","sheet_url":"x.com"},{"name":"Ayla","title":"b","sheet_url":"y.com"}]')`)

	removed, err := svc.RemoveCharacter(ctx, "u1", "Ayla")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
}
