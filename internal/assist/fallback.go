package assist

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	scriptStyleRe = regexp.MustCompile(`(?is)<(script|style)[^>]*>.*?</(script|style)>`)
	tagRe         = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
	sentenceRe    = regexp.MustCompile(`[.!?]+`)
	keyPointRe    = regexp.MustCompile(`(?i)\b(important|key|main|essential|crucial|significant)\b[^.!?]*[.!?]`)
)

// stripHTML reduces rich blog content to plain text for prompting and for
// the local fallback summary.
func stripHTML(html string) string {
	text := scriptStyleRe.ReplaceAllString(html, " ")
	text = tagRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// truncate bounds prompt material to at most n characters.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// fallbackSummary builds a deterministic local summary when the generator is
// unavailable. The wording is part of the API contract; clients show it as-is.
func fallbackSummary(title, content string) string {
	clean := stripHTML(content)

	var firstSentence string
	for _, s := range sentenceRe.Split(clean, -1) {
		if len(strings.TrimSpace(s)) > 20 {
			firstSentence = strings.TrimSpace(s)
			break
		}
	}

	if firstSentence != "" {
		summary := fmt.Sprintf("This blog post titled %q %s", title, strings.ToLower(firstSentence[:1])+firstSentence[1:])
		if keyPoint := keyPointRe.FindString(clean); keyPoint != "" {
			summary += fmt.Sprintf(" The post highlights %s", strings.ToLower(keyPoint[:1])+keyPoint[1:])
		}
		summary += " This summary was generated automatically due to AI service limitations."
		return summary
	}

	words := strings.Join(strings.Fields(clean)[:min(50, len(strings.Fields(clean)))], " ")
	return fmt.Sprintf("This blog post about %q covers topics related to %s... This summary was generated automatically due to AI service limitations.", title, words)
}

// commonMistakes backs the local grammar check when LanguageTool is down.
var commonMistakes = []struct {
	wrong   string
	correct string
}{
	{"teh", "the"},
	{"recieve", "receive"},
	{"occurence", "occurrence"},
	{"seperate", "separate"},
	{"definately", "definitely"},
	{"accomodate", "accommodate"},
	{"neccessary", "necessary"},
	{"existance", "existence"},
	{"beleive", "believe"},
	{"begining", "beginning"},
}

// basicGrammarCheck scans for a fixed table of common misspellings.
func basicGrammarCheck(text string) *GrammarResult {
	matches := []GrammarMatch{}
	for _, mistake := range commonMistakes {
		re := regexp.MustCompile(`(?i)\b` + mistake.wrong + `\b`)
		for _, loc := range re.FindAllStringIndex(text, -1) {
			matches = append(matches, GrammarMatch{
				Message:       fmt.Sprintf("Possible spelling mistake: %q -> %q", mistake.wrong, mistake.correct),
				ShortMessage:  "Spelling",
				Offset:        loc[0],
				Length:        len(mistake.wrong),
				Replacements:  []Replacement{{Value: mistake.correct}},
				RuleID:        "basic-spelling",
				Category:      "TYPOS",
				RuleIssueType: "misspelling",
			})
		}
	}
	return &GrammarResult{
		Matches:  matches,
		Language: GrammarLanguage{Code: "en-US", Name: "English (Basic Check)"},
	}
}

// splitLines breaks generator output into trimmed non-empty lines, keeping at
// most limit of them (0 = no limit).
func splitLines(text string, limit int) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if limit > 0 && len(lines) == limit {
			break
		}
	}
	return lines
}
