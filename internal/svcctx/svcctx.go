// Package svcctx provides service context for dependency injection via context.
// This package is separate from server to avoid import cycles with endpoints.
package svcctx

import (
	"context"
	"log/slog"

	"github.com/jackzampolin/chapterize/internal/config"
	"github.com/jackzampolin/chapterize/internal/document"
	"github.com/jackzampolin/chapterize/internal/home"
	"github.com/jackzampolin/chapterize/internal/jobs"
	"github.com/jackzampolin/chapterize/internal/llmtoc"
	"github.com/jackzampolin/chapterize/internal/store"
	"github.com/jackzampolin/chapterize/internal/toc"
)

// Services holds all core services that flow through context.
// Components extract what they need via the individual extractors.
type Services struct {
	Documents  store.Store[document.Info]
	TOCs       store.Store[*toc.Tree]
	JobManager *jobs.Manager
	ConfigMgr  *config.Manager
	Home       *home.Dir
	Logger     *slog.Logger

	// Extractor is nil when LLM extraction is disabled.
	Extractor *llmtoc.Extractor
}

type servicesKey struct{}

// WithServices returns a new context with services attached.
func WithServices(ctx context.Context, s *Services) context.Context {
	return context.WithValue(ctx, servicesKey{}, s)
}

// ServicesFrom extracts the full Services struct from context.
// Returns nil if not present.
func ServicesFrom(ctx context.Context) *Services {
	s, _ := ctx.Value(servicesKey{}).(*Services)
	return s
}

// DocumentsFrom extracts the uploaded-document store from context.
func DocumentsFrom(ctx context.Context) store.Store[document.Info] {
	if s := ServicesFrom(ctx); s != nil {
		return s.Documents
	}
	return nil
}

// TOCsFrom extracts the per-document TOC store from context.
func TOCsFrom(ctx context.Context) store.Store[*toc.Tree] {
	if s := ServicesFrom(ctx); s != nil {
		return s.TOCs
	}
	return nil
}

// JobManagerFrom extracts the job manager from context.
func JobManagerFrom(ctx context.Context) *jobs.Manager {
	if s := ServicesFrom(ctx); s != nil {
		return s.JobManager
	}
	return nil
}

// ConfigMgrFrom extracts the config manager from context.
func ConfigMgrFrom(ctx context.Context) *config.Manager {
	if s := ServicesFrom(ctx); s != nil {
		return s.ConfigMgr
	}
	return nil
}

// HomeFrom extracts the home directory from context.
func HomeFrom(ctx context.Context) *home.Dir {
	if s := ServicesFrom(ctx); s != nil {
		return s.Home
	}
	return nil
}

// LoggerFrom extracts the logger from context.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if s := ServicesFrom(ctx); s != nil {
		return s.Logger
	}
	return nil
}

// ExtractorFrom extracts the LLM TOC extractor from context.
// Returns nil when extraction is disabled.
func ExtractorFrom(ctx context.Context) *llmtoc.Extractor {
	if s := ServicesFrom(ctx); s != nil {
		return s.Extractor
	}
	return nil
}
