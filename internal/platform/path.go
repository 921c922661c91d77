package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/notes/internal/config"
)

const (
	// DefaultFileName is the store file created in the home directory.
	DefaultFileName = ".notes.json"
	// EnvStoreFile overrides the store path from the environment.
	EnvStoreFile = "NOTES_FILE"
)

// DefaultPath returns the per-user store path under home.
func DefaultPath(home string) string {
	return filepath.Join(home, DefaultFileName)
}

// ResolvePath picks the store path. The first non-empty source wins:
// the explicit path (--file), $NOTES_FILE, the configured store_path,
// then ~/.notes.json.
func ResolvePath(explicit, configured string) (string, error) {
	for _, p := range []string{explicit, os.Getenv(EnvStoreFile), configured} {
		if p != "" {
			return filepath.Abs(config.ExpandTilde(p))
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	if home == "" {
		return "", fmt.Errorf("resolving home directory: empty path")
	}
	return DefaultPath(home), nil
}
