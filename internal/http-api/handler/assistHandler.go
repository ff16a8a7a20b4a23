package handler

import (
	"errors"
	"net/http"

	"inkwell/internal/assist"
	"inkwell/internal/http-api/dto"

	"github.com/gin-gonic/gin"
)

// AssistHandler exposes the writing collaborator. Summarize and grammar
// checking always answer 200 because the service degrades to local
// heuristics; the generative routes answer 503 when the model is down.
type AssistHandler struct {
	assistService *assist.Service
}

func NewAssistHandler(assistService *assist.Service) *AssistHandler {
	return &AssistHandler{assistService: assistService}
}

func (h *AssistHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/summarize", h.Summarize)
	router.POST("/grammar", h.CheckGrammar)
	router.POST("/grammar/fix", h.FixGrammar)
	router.POST("/complete", h.Complete)
	router.POST("/titles", h.SuggestTitles)
	router.POST("/outline", h.SuggestOutline)
}

// Summarize condenses blog content into a short reader-facing summary
// POST /api/v1/ai/summarize
func (h *AssistHandler) Summarize(c *gin.Context) {
	var req dto.SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusLengthRequired, gin.H{"message": "Title and content are required"})
		return
	}

	summary := h.assistService.Summarize(c.Request.Context(), req.Title, req.Content)
	c.JSON(http.StatusOK, dto.SummarizeResponse{Summary: summary})
}

// CheckGrammar runs the text through the grammar checker
// POST /api/v1/ai/grammar
func (h *AssistHandler) CheckGrammar(c *gin.Context) {
	var req dto.GrammarCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusLengthRequired, gin.H{"message": "Text is required"})
		return
	}

	result := h.assistService.CheckGrammar(c.Request.Context(), req.Text, req.Language)
	c.JSON(http.StatusOK, result)
}

// FixGrammar applies the checker's suggested replacements to the text
// POST /api/v1/ai/grammar/fix
func (h *AssistHandler) FixGrammar(c *gin.Context) {
	var req dto.GrammarCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusLengthRequired, gin.H{"message": "Text is required"})
		return
	}

	corrected := h.assistService.AutoCorrect(c.Request.Context(), req.Text)
	c.JSON(http.StatusOK, gin.H{"corrected": corrected})
}

// Complete continues a draft from where the writer stopped
// POST /api/v1/ai/complete
func (h *AssistHandler) Complete(c *gin.Context) {
	var req dto.CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusLengthRequired, gin.H{"message": "Draft text is required"})
		return
	}

	completion, suggestions, err := h.assistService.Complete(c.Request.Context(), req.Text, req.Type)
	if err != nil {
		h.answerGenerateError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CompleteResponse{Completion: completion, Suggestions: suggestions})
}

// SuggestTitles proposes titles for a draft
// POST /api/v1/ai/titles
func (h *AssistHandler) SuggestTitles(c *gin.Context) {
	var req dto.TitleSuggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusLengthRequired, gin.H{"message": "Draft content is required"})
		return
	}

	titles, err := h.assistService.SuggestTitles(c.Request.Context(), req.Content)
	if err != nil {
		h.answerGenerateError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TitleSuggestionsResponse{Titles: titles})
}

// SuggestOutline drafts a section outline for a topic
// POST /api/v1/ai/outline
func (h *AssistHandler) SuggestOutline(c *gin.Context) {
	var req dto.OutlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusLengthRequired, gin.H{"message": "Topic is required"})
		return
	}

	outline, err := h.assistService.SuggestOutline(c.Request.Context(), req.Topic)
	if err != nil {
		h.answerGenerateError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OutlineResponse{Outline: outline})
}

func (h *AssistHandler) answerGenerateError(c *gin.Context, err error) {
	if errors.Is(err, assist.ErrUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "AI assistance is temporarily unavailable. Please try again."})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Error generating suggestion"})
}
