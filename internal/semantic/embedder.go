// Package semantic implements the soft matcher: embedding-based similarity
// over whole texts, skill lists, and document sections.
package semantic

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// ErrModelUnavailable reports that neither the primary nor the fallback
// embedding model could produce a vector. The orchestrator catches it and
// degrades the semantic score to 0.
var ErrModelUnavailable = errors.New("embedding model unavailable")

// Embedder maps a string to a fixed-length dense vector. Implementations
// must be safe for concurrent use; the engine shares one embedder across
// all evaluations.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// GeminiEmbedder produces embeddings via the Gemini API, falling back to a
// secondary model when the primary fails. The underlying client is created
// once at startup and shared read-only.
type GeminiEmbedder struct {
	client        *genai.Client
	model         string
	fallbackModel string
	log           *zap.Logger
}

// NewGeminiEmbedder creates a Gemini-backed embedder. A nil logger disables
// logging.
func NewGeminiEmbedder(ctx context.Context, apiKey, model, fallbackModel string, logger *zap.Logger) (*GeminiEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiEmbedder{
		client:        client,
		model:         model,
		fallbackModel: fallbackModel,
		log:           logger,
	}, nil
}

// Embed returns the embedding vector for text, trying the primary model and
// then the fallback. When both fail the error wraps ErrModelUnavailable.
func (e *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vec, err := e.embedWith(ctx, e.model, text)
	if err == nil {
		return vec, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if e.fallbackModel != "" && e.fallbackModel != e.model {
		e.log.Warn("primary embedding model failed, trying fallback",
			zap.String("model", e.model),
			zap.String("fallback", e.fallbackModel),
			zap.Error(err))
		vec, fallbackErr := e.embedWith(ctx, e.fallbackModel, text)
		if fallbackErr == nil {
			return vec, nil
		}
		err = fallbackErr
	}

	return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
}

// embedWith calls one embedding model.
func (e *GeminiEmbedder) embedWith(ctx context.Context, model, text string) ([]float32, error) {
	em := e.client.EmbeddingModel(model)
	resp, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("embed content with %s: %w", model, err)
	}
	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, fmt.Errorf("embed content with %s: empty embedding", model)
	}
	return resp.Embedding.Values, nil
}

// Close releases the underlying API client.
func (e *GeminiEmbedder) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}
