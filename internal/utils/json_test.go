package utils

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type balanceRecord struct {
	UserID  string `json:"user_id"`
	Balance int64  `json:"balance"`
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		data    []byte
		want    balanceRecord
		wantErr string
	}{
		{
			name: "plain document",
			data: []byte(`{"user_id": "100", "balance": 42}`),
			want: balanceRecord{UserID: "100", Balance: 42},
		},
		{
			name: "byte order mark",
			data: append([]byte{0xEF, 0xBB, 0xBF}, `{"user_id": "100", "balance": 7}`...),
			want: balanceRecord{UserID: "100", Balance: 7},
		},
		{
			name: "trailing whitespace",
			data: []byte("{\"user_id\": \"1\"}\n\n"),
			want: balanceRecord{UserID: "1"},
		},
		{
			name:    "trailing document",
			data:    []byte(`{"user_id": "1"} {"user_id": "2"}`),
			wantErr: "trailing data",
		},
		{
			name:    "malformed",
			data:    []byte(`{invalid json}`),
			wantErr: "failed to unmarshal JSON",
		},
		{
			name:    "empty file",
			data:    []byte{},
			wantErr: "failed to unmarshal JSON",
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, filepath.Base(t.Name())+string(rune('a'+i))+".json", tt.data)

			var got balanceRecord
			err := LoadJSON(path, &got)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadJSON_MissingFile(t *testing.T) {
	var got balanceRecord
	err := LoadJSON(filepath.Join(t.TempDir(), "absent.json"), &got)

	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestSaveJSON(t *testing.T) {
	t.Run("creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "export", "nested", "users.json")
		require.NoError(t, SaveJSON(path, map[string]int64{"100": 5}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "{\n    \"100\": 5\n}\n", string(data))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("replaces existing file without leftovers", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "users.json", []byte(`{"stale": true}`))

		require.NoError(t, SaveJSON(path, []balanceRecord{{UserID: "1", Balance: 2}}))

		var got []balanceRecord
		require.NoError(t, LoadJSON(path, &got))
		assert.Equal(t, []balanceRecord{{UserID: "1", Balance: 2}}, got)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temp file must not survive")
	})

	t.Run("unmarshalable data leaves target untouched", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "users.json", []byte(`{"kept": true}`))

		err := SaveJSON(path, map[string]interface{}{"bad": make(chan int)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to marshal data")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.JSONEq(t, `{"kept": true}`, string(data))
	})
}
