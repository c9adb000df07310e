package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

// ErrHelp is returned by ParseFlags when --help was requested.
var ErrHelp = flag.ErrHelp

// Flags holds parsed global command-line flags.
type Flags struct {
	Help    bool
	Version bool

	DataDir     string
	Config      string
	LegacyWords string

	LogLevel string
	LogFile  string
	LogJSON  bool

	// Args holds the subcommand and its arguments.
	Args []string

	SetLogJSON bool
}

// ParseFlags parses global flags from args. Parsing stops at the first
// non-flag argument, which is the subcommand.
func ParseFlags(args []string) (*Flags, error) {
	f := &Flags{}
	fs := flag.NewFlagSet("hedera-mnemonic", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.BoolVar(&f.Help, "help", false, "Show help message")
	fs.BoolVar(&f.Help, "h", false, "Show help message (shorthand)")
	fs.BoolVar(&f.Version, "version", false, "Show version information")
	fs.BoolVar(&f.Version, "v", false, "Show version (shorthand)")

	fs.StringVar(&f.DataDir, "datadir", "", "Data directory path")
	fs.StringVar(&f.Config, "config", "", "Config file path")
	fs.StringVar(&f.Config, "c", "", "Config file path (shorthand)")
	fs.StringVar(&f.LegacyWords, "legacy-words", "", "Legacy 4096-word vocabulary file")

	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "Log file path")
	fs.BoolVar(&f.LogJSON, "log-json", false, "Output logs as JSON")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, ErrHelp
		}
		return nil, err
	}

	f.SetLogJSON = isFlagSet(fs, "log-json")
	f.Args = fs.Args()
	return f, nil
}

// ApplyFlags applies command-line flags to a Config struct.
func ApplyFlags(cfg *Config, f *Flags) {
	if f.DataDir != "" {
		cfg.DataDir = f.DataDir
	}
	if f.LegacyWords != "" {
		cfg.LegacyWordList = f.LegacyWords
	}
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.LogFile != "" {
		cfg.Log.File = f.LogFile
	}
	if f.SetLogJSON {
		cfg.Log.JSON = f.LogJSON
	}
}

// isFlagSet checks if a flag was explicitly set.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// PrintUsage writes the global help text.
func PrintUsage(w io.Writer) {
	fmt.Fprint(w, `hedera-mnemonic - Hedera recovery phrase tool

Usage:
  hedera-mnemonic [global options] <command> [command options]

Commands:
  generate                 Generate a new 24-word phrase
  validate                 Check a phrase and report the first problem found
  key                      Derive keys from a phrase
  wallet import <name>     Seal a phrase into the keystore
  wallet list              List stored phrases
  wallet show <name>       Decrypt and print a stored phrase
  wallet delete <name>     Remove a stored phrase

Global Options:
  --datadir       Data directory (default: ~/.hedera-mnemonic)
  --config, -c    Config file path (default: <datadir>/hedera-mnemonic.conf)
  --legacy-words  Legacy 4096-word vocabulary file (needed for 22-word phrases)
  --log-level     Log level: debug, info, warn, error (default: warn)
  --log-file      Log file path
  --log-json      Output logs as JSON
  --help, -h      Show this help message
  --version, -v   Show version information

Phrases are read from stdin when not given with --phrase.
`)
}

// Load loads configuration with the following precedence:
// 1. Default values
// 2. Auto-create data dirs + default config (idempotent)
// 3. Config file
// 4. Command-line flags
func Load(args []string) (*Config, *Flags, error) {
	flags, err := ParseFlags(args)
	if err != nil {
		return nil, nil, err
	}

	cfg := Default()
	if flags.DataDir != "" {
		cfg.DataDir = flags.DataDir
	}

	if err := EnsureDataDirs(cfg); err != nil {
		return nil, nil, fmt.Errorf("ensuring data dirs: %w", err)
	}

	configPath := flags.Config
	if configPath == "" {
		configPath = cfg.ConfigFile()
	}
	fileValues, err := LoadFile(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config file: %w", err)
	}
	if err := ApplyFileConfig(cfg, fileValues); err != nil {
		return nil, nil, fmt.Errorf("applying config file: %w", err)
	}

	// Flags win, including over a datadir set in the file.
	ApplyFlags(cfg, flags)
	if err := Validate(cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, flags, nil
}

// EnsureDataDirs creates the data directory structure and a default config
// file if they don't already exist. It is safe to call on every start.
func EnsureDataDirs(cfg *Config) error {
	for _, dir := range []string{cfg.DataDir, cfg.KeystoreDir(), cfg.LogsDir()} {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	configPath := cfg.ConfigFile()
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := WriteDefaultConfig(configPath); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}
	}
	return nil
}
