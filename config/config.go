// Package config handles application configuration.
//
// Settings are layered: built-in defaults, then the .conf file in the data
// directory, then command-line flags.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Config holds runtime configuration for the hedera-mnemonic tool.
type Config struct {
	DataDir string `conf:"datadir"`

	// Path to a newline-separated 4096-word legacy vocabulary. Legacy
	// phrases cannot be checked or recovered without it.
	LegacyWordList string `conf:"mnemonic.legacy_wordlist"`

	Keystore KeystoreConfig

	Log LogConfig
}

// KeystoreConfig holds the Argon2id cost used when sealing new phrases.
// Existing records carry their own parameters.
type KeystoreConfig struct {
	Memory      uint32 `conf:"keystore.memory"` // in KiB
	Iterations  uint32 `conf:"keystore.iterations"`
	Parallelism uint8  `conf:"keystore.parallelism"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// DefaultDataDir returns the platform-specific default data directory.
//
//	Linux:   ~/.hedera-mnemonic
//	macOS:   ~/Library/Application Support/HederaMnemonic
//	Windows: %APPDATA%\HederaMnemonic
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hedera-mnemonic"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "HederaMnemonic")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "HederaMnemonic")
		}
		return filepath.Join(home, "AppData", "Roaming", "HederaMnemonic")
	default:
		return filepath.Join(home, ".hedera-mnemonic")
	}
}

// KeystoreDir returns the keystore database directory.
func (c *Config) KeystoreDir() string {
	return filepath.Join(c.DataDir, "keystore")
}

// LogsDir returns the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.DataDir, "logs")
}

// ConfigFile returns the config file path.
func (c *Config) ConfigFile() string {
	return filepath.Join(c.DataDir, "hedera-mnemonic.conf")
}
