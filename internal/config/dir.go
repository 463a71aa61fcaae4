package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the nbsync global configuration directory.
//
// Resolution:
//   - $NBSYNC_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/nbsync if set (respects XDG on any platform)
//   - %AppData%/nbsync on Windows
//   - ~/.config/nbsync on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("NBSYNC_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "nbsync")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "nbsync")
		}
	}

	// macOS and Linux: ~/.config/nbsync
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "nbsync")
}
