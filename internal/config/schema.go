package config

// Config is the top-level configuration document.
type Config struct {
	Server ServerCfg `mapstructure:"server" yaml:"server"`
	LLM    LLMCfg    `mapstructure:"llm" yaml:"llm"`
	Split  SplitCfg  `mapstructure:"split" yaml:"split"`
}

// ServerCfg configures the HTTP server.
type ServerCfg struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port string `mapstructure:"port" yaml:"port"`

	// MaxUploadMB caps the size of a single uploaded PDF.
	MaxUploadMB int `mapstructure:"max_upload_mb" yaml:"max_upload_mb"`
}

// LLMCfg configures the model used for TOC extraction from TOC pages.
type LLMCfg struct {
	Model   string `mapstructure:"model" yaml:"model"`
	APIKey  string `mapstructure:"api_key" yaml:"api_key"` // supports ${ENV_VAR} syntax
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`

	// MaxRetries bounds retry attempts for a failed model call.
	MaxRetries int `mapstructure:"max_retries" yaml:"max_retries"`

	// TimeoutSeconds bounds one model call end to end.
	TimeoutSeconds int `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

// SplitCfg configures split-job behavior.
type SplitCfg struct {
	// Archive controls whether completed jobs are zipped for download.
	Archive bool `mapstructure:"archive" yaml:"archive"`
}
