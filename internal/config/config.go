// Package config resolves runtime settings from a .env file, the
// environment and the user's config directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	appName    = "rebus"
	puzzleFile = "puzzle.yaml"
)

// Environment variables read by Load.
const (
	EnvPuzzle      = "REBUS_PUZZLE"
	EnvLogLevel    = "REBUS_LOG_LEVEL"
	EnvLogFile     = "REBUS_LOG_FILE"
	EnvNoAltScreen = "REBUS_NO_ALT_SCREEN"
)

// Settings are the knobs the CLI passes to the program.
type Settings struct {
	PuzzlePath  string
	LogLevel    string
	LogFile     string
	NoAltScreen bool
}

// Load reads envFile (when it exists) into the environment and builds
// Settings from it. An empty envFile means ".env" in the working directory.
func Load(envFile string) (Settings, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Settings{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	settings := Settings{
		PuzzlePath: os.Getenv(EnvPuzzle),
		LogLevel:   os.Getenv(EnvLogLevel),
		LogFile:    os.Getenv(EnvLogFile),
	}
	if raw := os.Getenv(EnvNoAltScreen); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid %s %q: %w", EnvNoAltScreen, raw, err)
		}
		settings.NoAltScreen = value
	}
	if settings.PuzzlePath == "" {
		settings.PuzzlePath = userPuzzlePath()
	}
	return settings, nil
}

// GetConfigDir returns the OS-appropriate configuration directory:
//   - Linux: $XDG_CONFIG_HOME/rebus or $HOME/.config/rebus
//   - macOS: $HOME/.config/rebus
//   - Windows: %LOCALAPPDATA%\rebus
func GetConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			return filepath.Join(userProfile, "AppData", "Local", appName), nil
		}
		return filepath.Join(localAppData, appName), nil
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil
	}
}

// userPuzzlePath returns the per-user puzzle file if one exists; otherwise
// "" so the embedded puzzle is used.
func userPuzzlePath() string {
	dir, err := GetConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, puzzleFile)
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return ""
	}
	return path
}
