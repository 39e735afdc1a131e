package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSessionFile_KeepsNewestNine(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(SessionFileNamePattern, base.Add(time.Duration(i)*time.Hour).Format(SessionFileTimestampFormat))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))

	f, err := OpenSessionFile(dir, base.Add(24*time.Hour))
	require.NoError(t, err)
	defer f.Close()

	logs, err := filepath.Glob(filepath.Join(dir, "*"+SessionFileExtension))
	require.NoError(t, err)
	assert.Len(t, logs, SessionFileRetentionCount)
	assert.FileExists(t, f.Name())
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
	assert.NoFileExists(t, filepath.Join(dir, fmt.Sprintf(SessionFileNamePattern, base.Format(SessionFileTimestampFormat))))
}

func TestPruneSessionFiles_NoopBelowLimit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.log"), nil, 0o644))

	PruneSessionFiles(dir, 3)

	assert.FileExists(t, filepath.Join(dir, "a.log"))
}
