package config

import "fmt"

// Validate checks runtime config for obvious operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.DataDir == "" {
		return fmt.Errorf("datadir must not be empty")
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn, or error")
	}

	ks := cfg.Keystore
	if ks.Iterations == 0 {
		return fmt.Errorf("keystore.iterations must be at least 1")
	}
	if ks.Parallelism == 0 {
		return fmt.Errorf("keystore.parallelism must be at least 1")
	}
	if ks.Memory < 8*uint32(ks.Parallelism) {
		return fmt.Errorf("keystore.memory must be at least %d KiB for parallelism %d",
			8*uint32(ks.Parallelism), ks.Parallelism)
	}
	return nil
}
