package assist

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockGenerator mocks the Generator interface
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateContent(ctx context.Context, prompt string, maxTokens int) (string, error) {
	args := m.Called(ctx, prompt, maxTokens)
	return args.String(0), args.Error(1)
}

// MockGrammarChecker mocks the GrammarChecker interface
type MockGrammarChecker struct {
	mock.Mock
}

func (m *MockGrammarChecker) Check(ctx context.Context, text, language string) (*GrammarResult, error) {
	args := m.Called(ctx, text, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*GrammarResult), args.Error(1)
}

func newTestService(gen *MockGenerator, grammar *MockGrammarChecker) *Service {
	return NewService(gen, grammar, zap.NewNop())
}

func TestSummarize_UsesGenerator(t *testing.T) {
	gen := new(MockGenerator)
	svc := newTestService(gen, new(MockGrammarChecker))

	gen.On("GenerateContent", mock.Anything, mock.Anything, 80).
		Return("  A short summary.  ", nil)

	summary := svc.Summarize(context.Background(), "My Post", "<p>Some content here.</p>")

	assert.Equal(t, "A short summary.", summary)
}

func TestSummarize_FallsBackOnError(t *testing.T) {
	gen := new(MockGenerator)
	svc := newTestService(gen, new(MockGrammarChecker))

	gen.On("GenerateContent", mock.Anything, mock.Anything, 80).Return("", ErrUnavailable)

	summary := svc.Summarize(context.Background(), "My Post",
		"<p>This article walks through the basics of building a web server in Go.</p>")

	assert.Contains(t, summary, `This blog post titled "My Post"`)
	assert.Contains(t, summary, "generated automatically due to AI service limitations")
}

func TestCheckGrammar_DefaultsLanguage(t *testing.T) {
	grammar := new(MockGrammarChecker)
	svc := newTestService(new(MockGenerator), grammar)

	grammar.On("Check", mock.Anything, "some text", "en-US").
		Return(&GrammarResult{Language: GrammarLanguage{Code: "en-US"}}, nil)

	result := svc.CheckGrammar(context.Background(), "some text", "")

	assert.Equal(t, "en-US", result.Language.Code)
	grammar.AssertExpectations(t)
}

func TestCheckGrammar_FallsBackToBasicCheck(t *testing.T) {
	grammar := new(MockGrammarChecker)
	svc := newTestService(new(MockGenerator), grammar)

	grammar.On("Check", mock.Anything, mock.Anything, mock.Anything).Return(nil, ErrUnavailable)

	result := svc.CheckGrammar(context.Background(), "I beleive teh answer", "en-US")

	assert.Len(t, result.Matches, 2)
	assert.Equal(t, "basic-spelling", result.Matches[0].RuleID)
}

func TestAutoCorrect_AppliesFromEndBackwards(t *testing.T) {
	grammar := new(MockGrammarChecker)
	svc := newTestService(new(MockGenerator), grammar)

	// Offline path exercises the offset arithmetic with two corrections
	grammar.On("Check", mock.Anything, mock.Anything, mock.Anything).Return(nil, ErrUnavailable)

	corrected := svc.AutoCorrect(context.Background(), "I beleive teh answer")

	assert.Equal(t, "I believe the answer", corrected)
}

func TestComplete_PropagatesUnavailable(t *testing.T) {
	gen := new(MockGenerator)
	svc := newTestService(gen, new(MockGrammarChecker))

	gen.On("GenerateContent", mock.Anything, mock.Anything, 512).Return("", ErrUnavailable)

	_, _, err := svc.Complete(context.Background(), "Once upon a time", "")

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestComplete_AlternativesBestEffort(t *testing.T) {
	gen := new(MockGenerator)
	svc := newTestService(gen, new(MockGrammarChecker))

	gen.On("GenerateContent", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.HasPrefix(p, "Continue writing")
	}), 512).Return("the story went on.", nil)
	gen.On("GenerateContent", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.HasPrefix(p, "Provide an alternative")
	}), 512).Return("", ErrUnavailable)
	gen.On("GenerateContent", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.HasPrefix(p, "Give another version")
	}), 512).Return("it kept going.", nil)

	completion, suggestions, err := svc.Complete(context.Background(), "Once upon a time", "")

	assert.NoError(t, err)
	assert.Equal(t, "the story went on.", completion)
	// The failed alternative is dropped, not fatal
	assert.Equal(t, []string{"it kept going."}, suggestions)
}

func TestSuggestTitles_FiveLinesMax(t *testing.T) {
	gen := new(MockGenerator)
	svc := newTestService(gen, new(MockGrammarChecker))

	gen.On("GenerateContent", mock.Anything, mock.Anything, 256).
		Return("One\n\nTwo\nThree\nFour\nFive\nSix\n", nil)

	titles, err := svc.SuggestTitles(context.Background(), "content about Go servers")

	assert.NoError(t, err)
	assert.Equal(t, []string{"One", "Two", "Three", "Four", "Five"}, titles)
}

func TestSuggestOutline_PropagatesError(t *testing.T) {
	gen := new(MockGenerator)
	svc := newTestService(gen, new(MockGrammarChecker))

	gen.On("GenerateContent", mock.Anything, mock.Anything, 512).Return("", ErrUnavailable)

	_, err := svc.SuggestOutline(context.Background(), "testing in Go")

	assert.ErrorIs(t, err, ErrUnavailable)
}
