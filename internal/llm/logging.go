package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/careerquest/internal/logger"
	"github.com/abhisek/careerquest/internal/store"
)

// LoggingProvider records every call as an LLM request event and a log line.
type LoggingProvider struct {
	inner    Provider
	provider string
	events   store.EventRepo
	log      *zap.Logger
}

// WithLogging wraps p. events may be nil, in which case only the log line is
// written.
func WithLogging(p Provider, provider string, events store.EventRepo, log *zap.Logger) Provider {
	return &LoggingProvider{
		inner:    p,
		provider: provider,
		events:   events,
		log:      logger.WithCommonFields(log, provider, p.ModelID()),
	}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}
	if resp != nil {
		data.Model = resp.Model
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.ResponseBody = string(resp.Content)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	l.emit(ctx, data)
	return resp, err
}

// Embed forwards to the wrapped provider when it supports embeddings.
func (l *LoggingProvider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	e, ok := l.inner.(Embedder)
	if !ok {
		return nil, ErrEmbeddingsUnsupported
	}

	start := time.Now()
	vecs, err := e.Embed(ctx, texts)

	data := store.LLMRequestEventData{
		Provider:    l.provider,
		Model:       e.EmbeddingModel(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: fmt.Sprintf("[embed] %d texts", len(texts)),
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	l.emit(ctx, data)
	return vecs, err
}

func (l *LoggingProvider) EmbeddingModel() string {
	if e, ok := l.inner.(Embedder); ok {
		return e.EmbeddingModel()
	}
	return ""
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

func (l *LoggingProvider) emit(ctx context.Context, data store.LLMRequestEventData) {
	fields := []zap.Field{
		zap.String("purpose", data.Purpose),
		zap.Int64("latency_ms", data.LatencyMs),
		zap.Int("input_tokens", data.InputTokens),
		zap.Int("output_tokens", data.OutputTokens),
	}
	if data.Success {
		l.log.Debug("llm request", fields...)
	} else {
		l.log.Warn("llm request failed", append(fields, zap.String("error", data.ErrorMessage))...)
	}

	if l.events == nil {
		return
	}
	// A failed audit write never fails the request.
	if err := l.events.AppendLLMRequest(ctx, data); err != nil {
		l.log.Warn("record llm request event", zap.Error(err))
	}
}

// serializeRequest renders the request for the audit log.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
