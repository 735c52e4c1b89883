package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrEmptyResponse is returned when the model answers with no content.
	ErrEmptyResponse = errors.New("ai returned empty response")
	// ErrMalformedResponse is returned when the model output is not the expected JSON.
	ErrMalformedResponse = errors.New("ai returned malformed response")
	// ErrInvalidInput is returned before any model call when a required field is blank.
	ErrInvalidInput = errors.New("invalid ai input")
	// ErrProviderNotConfigured is returned when the provider has no credentials.
	ErrProviderNotConfigured = errors.New("ai provider is not configured")
)

// CompletionRequest is one prompt sent to a Provider.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float32
	JSON         bool // ask the model for a JSON object
}

// Provider is a hosted large-language-model backend.
type Provider interface {
	Name() string
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// Generator runs the game flows against one Provider.
type Generator struct {
	provider    Provider
	temperature float32
	timeout     time.Duration
	logger      *zap.Logger
}

// Option customises a Generator.
type Option func(*Generator)

// WithTemperature sets the sampling temperature for every flow.
func WithTemperature(t float32) Option {
	return func(g *Generator) { g.temperature = t }
}

// WithTimeout bounds each model call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) { g.timeout = d }
}

// NewGenerator creates a Generator with temperature 0.7 and no timeout unless
// overridden by opts.
func NewGenerator(provider Provider, logger *zap.Logger, opts ...Option) *Generator {
	g := &Generator{
		provider:    provider,
		temperature: 0.7,
		logger:      logger.Named("Generator"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// complete sends one prompt through the provider, recording metrics under flow.
func (g *Generator) complete(ctx context.Context, flow, systemPrompt, userPrompt string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	provider := g.provider.Name()
	g.logger.Debug("Sending prompt",
		zap.String("provider", provider),
		zap.String("flow", flow),
		zap.Int("prompt_bytes", len(userPrompt)))

	start := time.Now()
	output, err := g.provider.Complete(ctx, CompletionRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
		Temperature:  g.temperature,
		JSON:         true,
	})
	duration := time.Since(start)
	aiRequestDuration.WithLabelValues(provider, flow).Observe(duration.Seconds())

	if err != nil {
		aiRequestsTotal.WithLabelValues(provider, flow, "error").Inc()
		g.logger.Warn("AI call failed",
			zap.String("provider", provider),
			zap.String("flow", flow),
			zap.Duration("duration", duration),
			zap.Error(err))
		return "", fmt.Errorf("%s %s failed: %w", provider, flow, err)
	}
	if strings.TrimSpace(output) == "" {
		aiRequestsTotal.WithLabelValues(provider, flow, "error_empty_response").Inc()
		return "", fmt.Errorf("%s %s: %w", provider, flow, ErrEmptyResponse)
	}

	aiRequestsTotal.WithLabelValues(provider, flow, "success").Inc()
	g.logger.Debug("LLM raw output",
		zap.String("flow", flow),
		zap.Duration("duration", duration),
		zap.String("output", output))
	return output, nil
}
