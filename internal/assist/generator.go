package assist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"
	"resty.dev/v3"
)

// ErrUnavailable means the external generator cannot serve the request:
// missing key, quota, outage, or an empty response.
var ErrUnavailable = errors.New("text generator unavailable")

// Generator is the external text-generation collaborator: one prompt in,
// one text out.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string, maxTokens int) (string, error)
}

type GeminiConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	RateLimit float64
	RateBurst int
	Timeout   time.Duration
}

// GeminiClient calls the Gemini REST API. Outbound calls go through a rate
// limiter so a burst of assist requests cannot burn the free-tier quota.
type GeminiClient struct {
	client      *resty.Client
	cfg         GeminiConfig
	rateLimiter *rate.Limiter
}

func NewGeminiClient(cfg GeminiConfig) *GeminiClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout)
	return &GeminiClient{
		client:      client,
		cfg:         cfg,
		rateLimiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
	}
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}

type geminiRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GenerateContent sends one prompt and returns the first candidate's text.
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if c.cfg.APIKey == "" {
		return "", ErrUnavailable
	}
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var out geminiResponse
	resp, err := c.client.R().
		WithContext(ctx).
		SetQueryParam("key", c.cfg.APIKey).
		SetBody(geminiRequest{
			Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
			GenerationConfig: generationConfig{
				// Low temperature for predictable output
				Temperature:     0.3,
				MaxOutputTokens: maxTokens,
			},
		}).
		SetResult(&out).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", c.cfg.Model))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode())
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", ErrUnavailable
	}
	text := out.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", ErrUnavailable
	}
	return text, nil
}
