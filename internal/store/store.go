package store

import (
	"fmt"
	"os"
	"path/filepath"
)

const dbFileName = "crewdesk.db"

// Store locates one workspace directory. The directory holds the sqlite
// database plus small best-effort state files; everything in it belongs
// to a single console installation.
type Store struct {
	Dir string
}

// ResolveDir picks the workspace directory: an explicit flag value wins,
// then the CREWDESK_DIR environment variable, then ~/.crewdesk.
func ResolveDir(flagDir string) (string, error) {
	if flagDir != "" {
		return filepath.Clean(flagDir), nil
	}
	if env := os.Getenv("CREWDESK_DIR"); env != "" {
		return filepath.Clean(env), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve workspace dir: %w", err)
	}
	return filepath.Join(home, ".crewdesk"), nil
}

// Ensure creates the workspace directory when missing.
func (s Store) Ensure() error {
	if s.Dir == "" {
		return fmt.Errorf("workspace dir not set")
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create workspace dir: %w", err)
	}
	return nil
}

func (s Store) dbPath() string {
	return filepath.Join(s.Dir, dbFileName)
}
