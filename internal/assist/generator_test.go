package assist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestGemini(serverURL string) *GeminiClient {
	return NewGeminiClient(GeminiConfig{
		APIKey:    "test-key",
		BaseURL:   serverURL,
		Model:     "gemini-1.5-flash",
		RateLimit: 100,
		RateBurst: 10,
		Timeout:   5 * time.Second,
	})
}

func TestGenerateContent_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-1.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req geminiRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "say hi", req.Contents[0].Parts[0].Text)
		assert.Equal(t, 80, req.GenerationConfig.MaxOutputTokens)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(geminiResponse{
			Candidates: []struct {
				Content geminiContent `json:"content"`
			}{
				{Content: geminiContent{Parts: []geminiPart{{Text: "hi there"}}}},
			},
		})
	}))
	defer server.Close()

	client := newTestGemini(server.URL)
	defer client.Close()

	text, err := client.GenerateContent(context.Background(), "say hi", 80)

	assert.NoError(t, err)
	assert.Equal(t, "hi there", text)
}

func TestGenerateContent_NoAPIKey(t *testing.T) {
	client := NewGeminiClient(GeminiConfig{
		BaseURL:   "http://localhost:0",
		Model:     "gemini-1.5-flash",
		RateLimit: 1,
		RateBurst: 1,
		Timeout:   time.Second,
	})
	defer client.Close()

	_, err := client.GenerateContent(context.Background(), "prompt", 80)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGenerateContent_EmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiResponse{})
	}))
	defer server.Close()

	client := newTestGemini(server.URL)
	defer client.Close()

	_, err := client.GenerateContent(context.Background(), "prompt", 80)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGenerateContent_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestGemini(server.URL)
	defer client.Close()

	_, err := client.GenerateContent(context.Background(), "prompt", 80)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGrammarCheck_SubmitsForm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/check", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "I beleive", r.PostForm.Get("text"))
		assert.Equal(t, "en-US", r.PostForm.Get("language"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(GrammarResult{
			Matches: []GrammarMatch{{
				Message:       "Possible spelling mistake found.",
				Offset:        2,
				Length:        7,
				Replacements:  []Replacement{{Value: "believe"}},
				RuleIssueType: "misspelling",
			}},
			Language: GrammarLanguage{Code: "en-US", Name: "English (US)"},
		})
	}))
	defer server.Close()

	client := NewLanguageToolClient(server.URL, 5*time.Second)
	defer client.Close()

	result, err := client.Check(context.Background(), "I beleive", "en-US")

	assert.NoError(t, err)
	assert.Len(t, result.Matches, 1)
	assert.Equal(t, "believe", result.Matches[0].Replacements[0].Value)
}

func TestGrammarCheck_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewLanguageToolClient(server.URL, time.Second)
	defer client.Close()

	_, err := client.Check(context.Background(), "text", "en-US")
	assert.ErrorIs(t, err, ErrUnavailable)
}
