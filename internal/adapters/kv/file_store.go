// Package kv contains the file-backed implementation of the version store.
package kv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/example/launchpad/internal/ports/secondary"
)

// FileStore persists the schema version marker as a base-10 integer in a
// single file, outside the relational store. A missing or unparseable file
// reads as version 0 (uninitialized).
type FileStore struct {
	path string
}

// NewFileStore creates a version store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get returns the persisted schema version, or 0 when the marker is absent
// or does not parse as an integer.
func (s *FileStore) Get(ctx context.Context) (int, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read version marker: %w", err)
	}

	version, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || version < 0 {
		return 0, nil
	}
	return version, nil
}

// Set persists the schema version. The write goes through a temp file and a
// rename so a crashed write never leaves a truncated marker behind.
func (s *FileStore) Set(ctx context.Context, version int) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create version marker directory: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(strconv.Itoa(version)), 0644); err != nil {
		return fmt.Errorf("failed to write version marker: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace version marker: %w", err)
	}

	return nil
}

// Ensure FileStore implements the interface.
var _ secondary.VersionStore = (*FileStore)(nil)
