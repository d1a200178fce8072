package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const uiStateFileName = "ui_state.json"

// UIState stores small, user-facing console state for restoring the last
// screen on relaunch.
//
// The file lives inside the workspace directory so state is naturally
// scoped per workspace. It is intentionally best effort: callers must
// tolerate missing or invalid data.
type UIState struct {
	Version int `json:"version"`

	// Dataset is the last opened collection (employees|events|expenses).
	Dataset string `json:"dataset,omitempty"`

	// Theme is an appearance profile id (default|alabaster|dracula|gruvbox).
	Theme string `json:"theme,omitempty"`

	// ColorProfile is one of: ascii|ansi|ansi256|truecolor.
	ColorProfile string `json:"colorProfile,omitempty"`
}

func (s Store) uiStatePath() string {
	return filepath.Join(s.Dir, uiStateFileName)
}

// LoadUIState reads the saved console state, returning a fresh default
// when the file is missing or unreadable.
func (s Store) LoadUIState() (*UIState, error) {
	if strings.TrimSpace(s.Dir) == "" {
		return &UIState{Version: 1}, nil
	}
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(s.uiStatePath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &UIState{Version: 1}, nil
		}
		return nil, err
	}
	var st UIState
	if err := json.Unmarshal(b, &st); err != nil {
		// Best-effort; if corrupted, treat as missing.
		return &UIState{Version: 1}, nil
	}
	if st.Version == 0 {
		st.Version = 1
	}
	return &st, nil
}

// SaveUIState writes the console state atomically (write + rename).
func (s Store) SaveUIState(st *UIState) error {
	if st == nil {
		return nil
	}
	if strings.TrimSpace(s.Dir) == "" {
		return nil
	}
	if err := s.Ensure(); err != nil {
		return err
	}
	if st.Version == 0 {
		st.Version = 1
	}
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	path := s.uiStatePath()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
