// Package llmtoc extracts a table of contents from a book's printed TOC
// pages using an OpenAI-compatible chat model. The page text is pulled from
// the PDF locally; only plain text crosses the wire.
package llmtoc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	retry "github.com/avast/retry-go/v4"
	pdflib "github.com/ledongthuc/pdf"
	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/jackzampolin/chapterize/internal/config"
	"github.com/jackzampolin/chapterize/internal/toc"
)

// ErrDisabled is returned when extraction is attempted without LLM support
// being enabled in the configuration.
var ErrDisabled = errors.New("llm toc extraction is disabled (set llm.enabled and llm.api_key)")

// Config holds the extractor's client settings.
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string        // Optional (tests, alternative providers)
	MaxRetries int           // Retry attempts for the chat call
	Timeout    time.Duration // HTTP timeout
	HTTPClient *http.Client  // Optional (tests)
	Logger     *slog.Logger
}

// FromLLMCfg maps the application config section onto extractor settings.
func FromLLMCfg(cfg config.LLMCfg, logger *slog.Logger) Config {
	return Config{
		APIKey:     cfg.APIKey,
		Model:      cfg.Model,
		BaseURL:    cfg.BaseURL,
		MaxRetries: cfg.MaxRetries,
		Timeout:    time.Duration(cfg.TimeoutSeconds) * time.Second,
		Logger:     logger,
	}
}

// Extractor turns printed TOC pages into a toc.Tree via a chat model.
type Extractor struct {
	model      string
	maxRetries int
	logger     *slog.Logger
	client     openai.Client
}

// New creates an Extractor. The API key must be non-empty.
func New(cfg Config) (*Extractor, error) {
	if cfg.APIKey == "" {
		return nil, ErrDisabled
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 120 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(httpClient),
		option.WithMaxRetries(0), // retry-go drives retries so attempts are logged
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Extractor{
		model:      cfg.Model,
		maxRetries: cfg.MaxRetries,
		logger:     cfg.Logger,
		client:     openai.NewClient(opts...),
	}, nil
}

// Extract reads the text of pages [fromPage, toPage] (1-based, inclusive)
// from the PDF at path, asks the model to transcribe the table of contents,
// and validates the response against the chapters schema.
func (e *Extractor) Extract(ctx context.Context, path string, fromPage, toPage int) (*toc.Tree, error) {
	text, err := PageText(path, fromPage, toPage)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("pages %d-%d of %s contain no extractable text", fromPage, toPage, path)
	}

	raw, err := e.complete(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("toc extraction failed: %w", err)
	}

	tree, err := toc.DecodeTree([]byte(StripFences(raw)))
	if err != nil {
		return nil, fmt.Errorf("model returned invalid toc json: %w", err)
	}
	return tree, nil
}

func (e *Extractor) complete(ctx context.Context, tocText string) (string, error) {
	var content string
	err := retry.Do(
		func() error {
			resp, err := e.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
				Model: openai.ChatModel(e.model),
				Messages: []openai.ChatCompletionMessageParamUnion{
					openai.SystemMessage(extractionPrompt),
					openai.UserMessage(tocText),
				},
			})
			if err != nil {
				e.logger.Warn("toc extraction attempt failed", "model", e.model, "error", err)
				return err
			}
			if len(resp.Choices) == 0 {
				return errors.New("chat completion returned no choices")
			}
			content = resp.Choices[0].Message.Content
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(e.maxRetries)),
		retry.Delay(2*time.Second),
	)
	return content, err
}

// PageText extracts the plain text of pages [fromPage, toPage] (1-based,
// inclusive). Pages that fail to render are skipped.
func PageText(path string, fromPage, toPage int) (string, error) {
	if fromPage < 1 || toPage < fromPage {
		return "", fmt.Errorf("invalid page range %d-%d", fromPage, toPage)
	}

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s for text extraction: %w", path, err)
	}
	defer f.Close()

	if toPage > reader.NumPage() {
		toPage = reader.NumPage()
	}

	var sb strings.Builder
	for i := fromPage; i <= toPage; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// StripFences removes a surrounding markdown code fence, if present. Models
// often wrap JSON output in ```json fences despite instructions.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:] // drop the language tag line
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
