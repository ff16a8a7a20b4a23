package assist

import (
	"context"
	"fmt"
	"time"

	"resty.dev/v3"
)

// GrammarMatch is one issue found in the checked text, in the LanguageTool
// response shape so clients can consume either source unchanged.
type GrammarMatch struct {
	Message       string        `json:"message"`
	ShortMessage  string        `json:"shortMessage"`
	Offset        int           `json:"offset"`
	Length        int           `json:"length"`
	Replacements  []Replacement `json:"replacements"`
	RuleID        string        `json:"ruleId"`
	Category      string        `json:"category"`
	RuleIssueType string        `json:"ruleIssueType"`
}

type Replacement struct {
	Value string `json:"value"`
}

type GrammarLanguage struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type GrammarResult struct {
	Matches  []GrammarMatch  `json:"matches"`
	Language GrammarLanguage `json:"language"`
}

// LanguageToolClient calls the LanguageTool public check endpoint.
type LanguageToolClient struct {
	client *resty.Client
}

func NewLanguageToolClient(baseURL string, timeout time.Duration) *LanguageToolClient {
	return &LanguageToolClient{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout),
	}
}

func (c *LanguageToolClient) Close() error {
	return c.client.Close()
}

// Check submits the text for grammar and spelling review.
func (c *LanguageToolClient) Check(ctx context.Context, text, language string) (*GrammarResult, error) {
	var out GrammarResult
	resp, err := c.client.R().
		WithContext(ctx).
		SetFormData(map[string]string{
			"text":        text,
			"language":    language,
			"enabledOnly": "false",
		}).
		SetResult(&out).
		Post("/v2/check")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode())
	}
	return &out, nil
}
