// Package advisor answers free-form career questions with a language model.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/abhisek/careerquest/internal/llm"
	"github.com/abhisek/careerquest/internal/locale"
	"github.com/abhisek/careerquest/internal/logger"
)

// MaxQuestionLength caps the question sent to the model, in runes.
const MaxQuestionLength = 1000

// ErrEmptyQuestion is returned for a blank question.
var ErrEmptyQuestion = errors.New("question is empty")

// Advisor is the career chat service.
type Advisor struct {
	provider llm.Provider
	cfg      Config
	log      *zap.Logger
}

// New creates an advisor. log may be nil.
func New(provider llm.Provider, cfg Config, log *zap.Logger) *Advisor {
	return &Advisor{provider: provider, cfg: cfg, log: logger.Named(log, "advisor")}
}

// Ask answers question in l. When the provider fails the returned string is
// the localized apology and err describes the failure, so callers can show
// the string either way.
func (a *Advisor) Ask(ctx context.Context, question string, l locale.Locale) (string, error) {
	return a.ask(ctx, nil, question, l)
}

func (a *Advisor) ask(ctx context.Context, history []llm.Message, question string, l locale.Locale) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyQuestion
	}
	if r := []rune(question); len(r) > MaxQuestionLength {
		question = string(r[:MaxQuestionLength])
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeAdvisor)

	msgs := append(append([]llm.Message(nil), history...),
		llm.Message{Role: llm.RoleUser, Content: buildUserMessage(question, l)})
	req := llm.Request{
		System:      systemPrompt,
		Messages:    msgs,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		a.log.Warn("advisor request failed", zap.Error(err))
		return locale.T(l, locale.KeyAdvisorError), fmt.Errorf("advisor: %w", err)
	}

	answer := strings.TrimSpace(resp.Text())
	if answer == "" {
		return locale.T(l, locale.KeyAdvisorError), errors.New("advisor: empty response")
	}
	a.log.Debug("advisor answered",
		zap.String("question", logger.TruncateForLog(question, 80)),
		zap.Int("answer_len", len(answer)))
	return answer, nil
}

// Conversation is a chat that resends recent exchanges with each question.
// It is safe for concurrent use; questions are answered one at a time.
type Conversation struct {
	advisor *Advisor

	mu    sync.Mutex
	turns []llm.Message
}

// Conversation starts an empty chat.
func (a *Advisor) Conversation() *Conversation {
	return &Conversation{advisor: a}
}

// Ask answers question with the earlier exchanges as context. Failed
// exchanges are not remembered.
func (c *Conversation) Ask(ctx context.Context, question string, l locale.Locale) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	answer, err := c.advisor.ask(ctx, c.turns, question, l)
	if err != nil {
		return answer, err
	}

	c.turns = append(c.turns,
		llm.Message{Role: llm.RoleUser, Content: strings.TrimSpace(question)},
		llm.Message{Role: llm.RoleAssistant, Content: answer})
	if keep := 2 * c.advisor.cfg.HistoryTurns; len(c.turns) > keep {
		c.turns = append([]llm.Message(nil), c.turns[len(c.turns)-keep:]...)
	}
	return answer, nil
}

// Turns returns a copy of the remembered exchanges, oldest first.
func (c *Conversation) Turns() []llm.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]llm.Message(nil), c.turns...)
}

// Reset forgets every exchange.
func (c *Conversation) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.turns = nil
}
