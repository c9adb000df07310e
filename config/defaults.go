package config

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		DataDir: DefaultDataDir(),
		Keystore: KeystoreConfig{
			Memory:      64 * 1024, // 64 MB
			Iterations:  3,
			Parallelism: 4,
		},
		Log: LogConfig{
			Level: "warn",
			JSON:  false,
		},
	}
}
