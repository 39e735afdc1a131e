package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	jsonIndent   = "    "
	tempPattern  = ".tmp-*.json"
	dirPerm      = 0o755
	dataFilePerm = 0o600
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadJSON decodes the file at path into target. A leading UTF-8 byte order
// mark is ignored and trailing data after the document is an error. A
// missing file wraps fs.ErrNotExist.
func LoadJSON(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON from %s: %w", path, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to unmarshal JSON from %s: trailing data after document", path)
	}
	return nil
}

// SaveJSON writes data as indented JSON. The file is replaced atomically so
// a crash mid-write never leaves a truncated export behind.
func SaveJSON(path string, data interface{}) error {
	encoded, err := json.MarshalIndent(data, "", jsonIndent)
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}
	if err := writeFileAtomic(path, append(encoded, '\n')); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(dataFilePerm); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
