package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// ErrNotFound indicates that no trace has been recorded yet.
var ErrNotFound = errors.New("session entry not found")

// fileState represents the serialized session.json contents.
type fileState struct {
	Last *LastTrace `json:"last,omitempty"`
}

// LastTrace points at the most recently written trace file.
type LastTrace struct {
	TracePath string `json:"trace_path"`
	RunID     string `json:"run_id,omitempty"`
	UpdatedAt string `json:"updated_at"`
}

var (
	stateMutex sync.Mutex

	pathMutex  sync.RWMutex
	customPath string
)

// Path returns the location of the session file. It uses a custom override when set,
// falling back to the default configuration directory.
func Path() string {
	pathMutex.RLock()
	override := customPath
	pathMutex.RUnlock()
	if override != "" {
		return override
	}
	return defaultSessionPath()
}

// SaveLast records tracePath as the most recent trace.
func SaveLast(tracePath, runID string) error {
	stateMutex.Lock()
	defer stateMutex.Unlock()

	abs, err := filepath.Abs(tracePath)
	if err != nil {
		return fmt.Errorf("failed to resolve trace path: %w", err)
	}

	state, err := loadState()
	if err != nil {
		return err
	}
	state.Last = &LastTrace{
		TracePath: abs,
		RunID:     runID,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	Debugf("session: last trace %s (run %s)", abs, runID)
	return saveState(state)
}

// LoadLast returns the most recent trace, or ErrNotFound.
func LoadLast() (*LastTrace, error) {
	stateMutex.Lock()
	defer stateMutex.Unlock()

	state, err := loadState()
	if err != nil {
		return nil, err
	}
	if state.Last == nil || state.Last.TracePath == "" {
		return nil, ErrNotFound
	}
	last := *state.Last
	return &last, nil
}

// ClearLast forgets the most recent trace.
func ClearLast() error {
	stateMutex.Lock()
	defer stateMutex.Unlock()

	state, err := loadState()
	if err != nil {
		return err
	}
	state.Last = nil
	return saveState(state)
}

func loadState() (*fileState, error) {
	path := Path()
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return &fileState{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open session file: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	if len(content) == 0 {
		return &fileState{}, nil
	}

	var state fileState
	if err := json.Unmarshal(content, &state); err != nil {
		return nil, fmt.Errorf("failed to decode session file: %w", err)
	}
	return &state, nil
}

func saveState(state *fileState) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to ensure session directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session file: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write temporary session file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace session file: %w", err)
	}
	return nil
}

// SetPath overrides the session file path. Empty string resets to the default location.
func SetPath(path string) {
	pathMutex.Lock()
	defer pathMutex.Unlock()
	if path == "" {
		customPath = ""
		return
	}
	cleaned := filepath.Clean(path)
	if !filepath.IsAbs(cleaned) {
		if abs, err := filepath.Abs(cleaned); err == nil {
			customPath = abs
			return
		}
	}
	customPath = cleaned
}

func defaultSessionPath() string {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".config", "tracelog", "session.json")
	}
	return "session.json"
}
