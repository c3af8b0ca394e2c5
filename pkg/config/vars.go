package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "gngenes"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gngenes by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gngenes/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gngenes/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// SpeciesFilePath returns the full path to the species.yaml file.
// Returns ~/.config/gngenes/species.yaml by default.
func SpeciesFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "species.yaml")
}
