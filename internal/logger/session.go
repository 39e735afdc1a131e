package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// OpenSessionFile creates a timestamped session log in dir after pruning
// older sessions so that at most SessionFileRetentionCount remain including
// the new one. The caller closes the returned file.
func OpenSessionFile(dir string, now time.Time) (*os.File, error) {
	if err := os.MkdirAll(dir, SessionDirPermission); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	PruneSessionFiles(dir, SessionFileRetentionCount-1)

	name := filepath.Join(dir, fmt.Sprintf(SessionFileNamePattern, now.Format(SessionFileTimestampFormat)))
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, SessionFilePermission)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// InitSessionLogger writes logs to stdout and a fresh session file.
func InitSessionLogger(cfg Config, dir string) (*os.File, error) {
	f, err := OpenSessionFile(dir, time.Now())
	if err != nil {
		return nil, err
	}
	InitLoggerWithWriter(cfg, io.MultiWriter(os.Stdout, f))
	return f, nil
}

// PruneSessionFiles deletes the oldest .log files in dir until keep remain.
// Session names sort chronologically, so lexical order is age order.
func PruneSessionFiles(dir string, keep int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), SessionFileExtension) {
			names = append(names, entry.Name())
		}
	}
	if len(names) <= keep {
		return
	}

	sort.Strings(names)
	for _, name := range names[:len(names)-keep] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to delete old log file %s: %v\n", name, err)
		}
	}
}
