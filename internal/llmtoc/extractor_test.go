package llmtoc

import (
	"testing"

	"github.com/jackzampolin/chapterize/internal/config"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"chapters": []}`, `{"chapters": []}`},
		{"json fence", "```json\n{\"chapters\": []}\n```", `{"chapters": []}`},
		{"plain fence", "```\n{\"chapters\": []}\n```", `{"chapters": []}`},
		{"surrounding whitespace", "  \n```json\n{}\n```\n  ", "{}"},
		{"no closing fence", "```json\n{}", "{}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripFences(tt.in); got != tt.want {
				t.Errorf("StripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := New(Config{}); err != ErrDisabled {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
}

func TestNewDefaults(t *testing.T) {
	e, err := New(Config{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if e.model != "gpt-4o-mini" {
		t.Errorf("default model = %q", e.model)
	}
	if e.maxRetries != 3 {
		t.Errorf("default maxRetries = %d", e.maxRetries)
	}
}

func TestFromLLMCfg(t *testing.T) {
	cfg := FromLLMCfg(config.LLMCfg{
		Model:          "gpt-4o",
		APIKey:         "k",
		BaseURL:        "http://localhost:9999",
		MaxRetries:     5,
		TimeoutSeconds: 30,
	}, nil)
	if cfg.Model != "gpt-4o" || cfg.APIKey != "k" || cfg.BaseURL != "http://localhost:9999" {
		t.Errorf("unexpected mapping: %+v", cfg)
	}
	if cfg.Timeout.Seconds() != 30 {
		t.Errorf("timeout = %v", cfg.Timeout)
	}
}

func TestPageTextRejectsBadRange(t *testing.T) {
	if _, err := PageText("does-not-matter.pdf", 0, 3); err == nil {
		t.Error("expected error for fromPage 0")
	}
	if _, err := PageText("does-not-matter.pdf", 5, 2); err == nil {
		t.Error("expected error for inverted range")
	}
}
