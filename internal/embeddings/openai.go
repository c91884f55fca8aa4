package embeddings

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIGenerator embeds text with the OpenAI embeddings API.
type OpenAIGenerator struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

func NewOpenAIGenerator(apiKey string, model string) *OpenAIGenerator {
	if model == "" {
		model = string(openai.SmallEmbedding3) // text-embedding-3-small, 1536 dims
	}
	return &OpenAIGenerator{
		client: openai.NewClient(apiKey),
		model:  openai.EmbeddingModel(model),
	}
}

func (g *OpenAIGenerator) Dimension() int { return Dimension }

func (g *OpenAIGenerator) Generate(ctx context.Context, text string) ([]float32, error) {
	if IsBlank(text) {
		return ZeroVector(Dimension), nil
	}

	resp, err := g.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: g.model,
	})
	if err != nil {
		return nil, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("openai embeddings: empty response")
	}

	return ConformDimension(resp.Data[0].Embedding, Dimension), nil
}
