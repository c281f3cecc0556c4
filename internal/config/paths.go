package config

import (
	"os"
	"path/filepath"
)

// GetFieldnotesHome returns FIELDNOTES_HOME or the ~/.fieldnotes default
func GetFieldnotesHome() string {
	home := os.Getenv("FIELDNOTES_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".fieldnotes"
		}
		return filepath.Join(homeDir, ".fieldnotes")
	}
	return ExpandPath(home)
}

// GetDBPath returns $FIELDNOTES_HOME/fieldnotes.db
func GetDBPath() string {
	return filepath.Join(GetFieldnotesHome(), "fieldnotes.db")
}

// GetSettingsPath returns $FIELDNOTES_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetFieldnotesHome(), "settings.json")
}

// GetHostKeyPath returns the default SSH host key location
func GetHostKeyPath() string {
	return filepath.Join(GetFieldnotesHome(), "ssh_host_ed25519")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
