// Package assist wraps the external generative-AI and grammar collaborators
// behind prompt construction and deterministic local fallbacks. Read-style
// features (summary, grammar) never fail; write-assist features (completion,
// titles, outline) surface ErrUnavailable because there is no safe default
// text to substitute.
package assist

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// GrammarChecker is the external grammar collaborator.
type GrammarChecker interface {
	Check(ctx context.Context, text, language string) (*GrammarResult, error)
}

type Service struct {
	gen     Generator
	grammar GrammarChecker
	log     *zap.Logger
}

func NewService(gen Generator, grammar GrammarChecker, log *zap.Logger) *Service {
	return &Service{gen: gen, grammar: grammar, log: log}
}

// Summarize produces a 1-2 sentence summary of a post. Any generator failure
// degrades to the local heuristic summary; this never returns an error.
func (s *Service) Summarize(ctx context.Context, title, content string) string {
	clean := truncate(stripHTML(content), 800)
	prompt := fmt.Sprintf("Summarize in 1-2 sentences: %q - %s", title, clean)

	text, err := s.gen.GenerateContent(ctx, prompt, 80)
	if err != nil {
		s.log.Warn("summary generator failed, using fallback", zap.Error(err))
		return fallbackSummary(title, content)
	}
	return strings.TrimSpace(text)
}

// CheckGrammar reviews text with the grammar collaborator, degrading to the
// built-in misspelling table when it is unreachable. Never returns an error.
func (s *Service) CheckGrammar(ctx context.Context, text, language string) *GrammarResult {
	if language == "" {
		language = "en-US"
	}
	result, err := s.grammar.Check(ctx, text, language)
	if err != nil {
		s.log.Warn("grammar collaborator failed, using basic check", zap.Error(err))
		return basicGrammarCheck(text)
	}
	return result
}

// AutoCorrect applies misspelling and typographical corrections to the text,
// from the end backwards so earlier offsets stay valid.
func (s *Service) AutoCorrect(ctx context.Context, text string) string {
	result := s.CheckGrammar(ctx, text, "")
	if len(result.Matches) == 0 {
		return text
	}

	corrections := make([]GrammarMatch, 0, len(result.Matches))
	for _, m := range result.Matches {
		if (m.RuleIssueType == "misspelling" || m.RuleIssueType == "typographical") && len(m.Replacements) > 0 {
			corrections = append(corrections, m)
		}
	}
	sort.Slice(corrections, func(i, j int) bool { return corrections[i].Offset > corrections[j].Offset })

	corrected := text
	for _, c := range corrections {
		if c.Offset < 0 || c.Offset+c.Length > len(corrected) {
			continue
		}
		corrected = corrected[:c.Offset] + c.Replacements[0].Value + corrected[c.Offset+c.Length:]
	}
	return corrected
}

// Complete continues/improves/rephrases/summarizes the given text and
// gathers up to two alternative phrasings. Generator failure propagates.
func (s *Service) Complete(ctx context.Context, text, completionType string) (string, []string, error) {
	prompt := completionPrompt(text, completionType)
	completion, err := s.gen.GenerateContent(ctx, prompt, 512)
	if err != nil {
		return "", nil, err
	}

	// Alternatives are best effort; a failed alternative is just dropped
	var suggestions []string
	for _, p := range []string{
		fmt.Sprintf("Provide an alternative way to %s this text: %s", orContinue(completionType), text),
		fmt.Sprintf("Give another version of %s this text: %s", orContinue(completionType), text),
	} {
		alt, err := s.gen.GenerateContent(ctx, p, 512)
		if err != nil {
			continue
		}
		if alt = strings.TrimSpace(alt); alt != "" {
			suggestions = append(suggestions, alt)
		}
	}
	return strings.TrimSpace(completion), suggestions, nil
}

// SuggestTitles proposes up to five titles for the content. Generator
// failure propagates.
func (s *Service) SuggestTitles(ctx context.Context, content string) ([]string, error) {
	prompt := fmt.Sprintf("Based on this blog post content, suggest 5 engaging and SEO-friendly titles:\n\n%s...\n\nProvide only the titles, one per line:", truncate(stripHTML(content), 500))
	text, err := s.gen.GenerateContent(ctx, prompt, 256)
	if err != nil {
		return nil, err
	}
	return splitLines(text, 5), nil
}

// SuggestOutline proposes section headings for a topic. Generator failure
// propagates.
func (s *Service) SuggestOutline(ctx context.Context, topic string) ([]string, error) {
	prompt := fmt.Sprintf("Create a blog post outline for the topic: %q\n\nProvide 5-7 main sections/headings that would make a comprehensive blog post:", topic)
	text, err := s.gen.GenerateContent(ctx, prompt, 512)
	if err != nil {
		return nil, err
	}
	return splitLines(text, 0), nil
}

func completionPrompt(text, completionType string) string {
	switch completionType {
	case "improve":
		return fmt.Sprintf("Improve this text to make it more engaging, clear, and well-written while keeping the same meaning:\n\n%s\n\nImproved version:", text)
	case "rephrase":
		return fmt.Sprintf("Rephrase this text in a different way while keeping the same meaning:\n\n%s\n\nRephrased version:", text)
	case "summarize":
		return fmt.Sprintf("Summarize this text concisely:\n\n%s\n\nSummary:", text)
	default:
		return fmt.Sprintf("Continue writing this blog post in a natural, engaging way. Keep the same tone and style:\n\n%s\n\nContinue the text naturally (provide only the continuation, not the original text):", text)
	}
}

func orContinue(completionType string) string {
	if completionType == "" {
		return "continue"
	}
	return completionType
}
