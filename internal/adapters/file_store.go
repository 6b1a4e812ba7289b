// Package adapters contains the driven-side adapters of the application.
// Currently that is a single filesystem store for the workspace state.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"curmap/pkg/domain"
	"curmap/pkg/normalize"
)

// stateFile is the single well-known storage slot inside a workspace.
const stateFile = "state.json"

// FileStore persists the workspace state as one JSON document under
// <dir>/.curmap/. It is written through after every mutation; data volumes
// are tiny, so there is no batching or debounce.
type FileStore struct {
	BasePath string
	logger   *slog.Logger
}

// NewFileStore creates a store rooted at the given workspace directory.
// An empty dir defaults to the current directory.
func NewFileStore(dir string, logger *slog.Logger) *FileStore {
	if dir == "" {
		dir = "."
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &FileStore{BasePath: filepath.Join(dir, ".curmap"), logger: logger}
}

// Path returns the full path of the state file.
func (f *FileStore) Path() string {
	return filepath.Join(f.BasePath, stateFile)
}

// Load reads and normalizes the persisted state. A missing file, an
// unreadable file, or unparseable JSON all degrade silently to the full
// default state; malformed persistence is never surfaced as an error.
func (f *FileStore) Load(ctx context.Context, now time.Time) *domain.State {
	data, err := os.ReadFile(f.Path())
	if err != nil {
		if !os.IsNotExist(err) {
			f.logger.Debug("state file unreadable, starting fresh", "path", f.Path(), "err", err)
		}
		return domain.NewState(now)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		f.logger.Debug("state file is not valid JSON, starting fresh", "path", f.Path(), "err", err)
		return domain.NewState(now)
	}

	return normalize.State(raw, now)
}

// Save writes the state to the slot as pretty-printed JSON.
func (f *FileStore) Save(ctx context.Context, state *domain.State) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}

	if err := os.MkdirAll(f.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure workspace directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(f.Path(), data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	f.logger.Debug("state saved", "path", f.Path(), "items", len(state.Items))
	return nil
}

// Delete removes the state file. Removing an absent file is not an error.
func (f *FileStore) Delete(ctx context.Context) error {
	err := os.Remove(f.Path())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete state file: %w", err)
	}
	return nil
}
