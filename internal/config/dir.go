package config

import (
	"os"
	"path/filepath"
)

const dirEnv = "EDITLINE_CONFIG_DIR"

// Dir returns the directory holding settings files. The EDITLINE_CONFIG_DIR
// environment variable overrides the platform default.
func Dir() string {
	if dir := os.Getenv(dirEnv); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return ".editline"
		}
		return filepath.Join(home, ".editline")
	}
	return filepath.Join(base, "editline")
}
