package config

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerCfg{
			Host:        "127.0.0.1",
			Port:        "8080",
			MaxUploadMB: 500,
		},
		LLM: LLMCfg{
			Model:          "gpt-4o-mini",
			APIKey:         "${OPENAI_API_KEY}",
			Enabled:        false,
			MaxRetries:     3,
			TimeoutSeconds: 120,
		},
		Split: SplitCfg{
			Archive: true,
		},
	}
}
