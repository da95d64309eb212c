// Package config loads optional defaults for the shareplan CLI.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the shareplan configuration directory.
//
// Resolution:
//   - $SHAREPLAN_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/shareplan if set (respects XDG on any platform)
//   - %AppData%/shareplan on Windows
//   - ~/.config/shareplan on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("SHAREPLAN_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "shareplan")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "shareplan")
		}
	}

	// macOS and Linux: ~/.config/shareplan
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "shareplan")
}
