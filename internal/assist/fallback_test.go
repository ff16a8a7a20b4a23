package assist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHTML(t *testing.T) {
	html := `<h1>Title</h1><script>alert("x")</script><p>Body   text</p><style>p{color:red}</style>`

	assert.Equal(t, "Title Body text", stripHTML(html))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "abcde", truncate("abcdefgh", 5))
}

func TestFallbackSummary_UsesFirstRealSentence(t *testing.T) {
	content := "<p>Go makes concurrent programming approachable for everyday services. More text.</p>"

	summary := fallbackSummary("Why Go", content)

	assert.Contains(t, summary, `This blog post titled "Why Go" go makes concurrent programming`)
	assert.Contains(t, summary, "This summary was generated automatically due to AI service limitations.")
}

func TestFallbackSummary_HighlightsKeyPoint(t *testing.T) {
	content := "Go makes concurrent programming approachable for everyday services. The important thing is goroutines stay cheap."

	summary := fallbackSummary("Why Go", content)

	assert.Contains(t, summary, "The post highlights")
	assert.Contains(t, summary, "goroutines stay cheap")
}

func TestFallbackSummary_ShortContent(t *testing.T) {
	summary := fallbackSummary("Note", "Short note")

	assert.Contains(t, summary, `This blog post about "Note"`)
	assert.Contains(t, summary, "Short note")
}

func TestBasicGrammarCheck_TableOfMisspellings(t *testing.T) {
	result := basicGrammarCheck("I definately beleive teh seperate answer")

	assert.Len(t, result.Matches, 4)
	for _, m := range result.Matches {
		assert.Equal(t, "basic-spelling", m.RuleID)
		assert.Equal(t, "misspelling", m.RuleIssueType)
		assert.Len(t, m.Replacements, 1)
	}
}

func TestBasicGrammarCheck_CaseInsensitive(t *testing.T) {
	result := basicGrammarCheck("Teh start")

	assert.Len(t, result.Matches, 1)
	assert.Equal(t, 0, result.Matches[0].Offset)
	assert.Equal(t, "the", result.Matches[0].Replacements[0].Value)
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitLines(" a \n\n b \n", 0))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\nb\nc\nd", 2))
	assert.Empty(t, splitLines("\n  \n", 0))
}
