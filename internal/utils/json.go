package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FilePerm is the permission used for data files.
const FilePerm = 0o644

// LoadJSON reads a JSON file and unmarshals it into the target interface.
func LoadJSON(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON from %s: %w", path, err)
	}
	return nil
}

// Marshal encodes data compactly without HTML escaping.
func Marshal(data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		return nil, fmt.Errorf("failed to marshal data: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// MarshalIndent encodes data with two-space indentation and without HTML
// escaping, so non-ASCII text and markup characters survive as written.
func MarshalIndent(data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return nil, fmt.Errorf("failed to marshal data: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// SaveJSON marshals the data and replaces path atomically through a
// temporary file in the same directory.
func SaveJSON(path string, data interface{}) error {
	encoded, err := MarshalIndent(data)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // best effort after rename

	if _, err := tmp.Write(encoded); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, FilePerm); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
