package providers

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"studynexus/internal/structures"
	"time"

	json "github.com/goccy/go-json"
	"github.com/sony/gobreaker"
)

const (
	summaryPrompt    = "Summarize this medical study session concisely with key takeaways and definitions: \n\n "
	extractionPrompt = "Extract all study material from this document as raw text."
	maxResponseSize  = 4 << 20
)

var (
	ErrGeneratorDisabled = errors.New("text generator is not configured")
	ErrGeneratorOpen     = errors.New("text generator is temporarily unavailable")
	ErrEmptyCompletion   = errors.New("text generator returned no text")
)

// TextGeneratorInterface is the generative-text collaborator used for session
// summaries and document extraction.
type TextGeneratorInterface interface {
	Summarize(ctx context.Context, transcript string) (string, error)
	ExtractText(ctx context.Context, mimeType string, data []byte) (string, error)
}

type AIProvider struct {
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  Logger
	baseURL string
	model   string
	apiKey  string
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type contentPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type content struct {
	Role  string        `json:"role,omitempty"`
	Parts []contentPart `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type upstreamError struct {
	status int
	body   string
}

func (e *upstreamError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.status, e.body)
}

func NewAIProvider(conf *structures.Config, logger Logger) TextGeneratorInterface {
	if conf.AI.APIKey == "" {
		logger.Infof(TypeAI, "AI key not configured, summaries and document extraction disabled")
		return &noopGenerator{}
	}

	maxFailures := conf.AI.MaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}

	p := &AIProvider{
		client:  &http.Client{Timeout: conf.AI.Timeout},
		logger:  logger,
		baseURL: strings.TrimRight(conf.AI.BaseURL, "/"),
		model:   conf.AI.Model,
		apiKey:  conf.AI.APIKey,
	}
	p.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "ai-" + conf.AI.Model,
		MaxRequests: 1,
		Timeout:     conf.AI.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warnf(TypeAI, "Circuit breaker %s: %s -> %s", name, from, to)
		},
		IsSuccessful: func(err error) bool {
			var ue *upstreamError
			if errors.As(err, &ue) {
				return ue.status < http.StatusInternalServerError
			}
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	logger.Infof(TypeAI, "AI provider initialized: model=%s", p.model)
	return p
}

func (p *AIProvider) Summarize(ctx context.Context, transcript string) (string, error) {
	return p.generate(ctx, []contentPart{{Text: summaryPrompt + transcript}})
}

func (p *AIProvider) ExtractText(ctx context.Context, mimeType string, data []byte) (string, error) {
	return p.generate(ctx, []contentPart{
		{InlineData: &inlineData{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(data)}},
		{Text: extractionPrompt},
	})
}

func (p *AIProvider) generate(ctx context.Context, parts []contentPart) (string, error) {
	result, err := p.breaker.Execute(func() (interface{}, error) {
		return p.call(ctx, parts)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", ErrGeneratorOpen
		}
		return "", err
	}
	return result.(string), nil
}

func (p *AIProvider) call(ctx context.Context, parts []contentPart) (string, error) {
	body, err := json.Marshal(generateRequest{Contents: []content{{Role: "user", Parts: parts}}})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", p.baseURL, p.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", p.apiKey)

	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("generateContent request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("generateContent read: %w", err)
	}
	p.logger.Debugf(TypeAI, "generateContent status=%d took=%s", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return "", &upstreamError{status: resp.StatusCode, body: string(raw)}
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("generateContent decode: %w", err)
	}

	var sb strings.Builder
	if len(out.Candidates) > 0 {
		for _, part := range out.Candidates[0].Content.Parts {
			sb.WriteString(part.Text)
		}
	}
	if sb.Len() == 0 {
		return "", ErrEmptyCompletion
	}
	return sb.String(), nil
}

type noopGenerator struct{}

func (n *noopGenerator) Summarize(_ context.Context, _ string) (string, error) {
	return "", ErrGeneratorDisabled
}

func (n *noopGenerator) ExtractText(_ context.Context, _ string, _ []byte) (string, error) {
	return "", ErrGeneratorDisabled
}
