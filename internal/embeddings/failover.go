package embeddings

import (
	"context"

	"github.com/sirupsen/logrus"
)

// FailoverGenerator tries the model-backed strategy first and silently
// substitutes the deterministic fallback when it errors. Profile writes
// must never fail because an embedding backend is down.
type FailoverGenerator struct {
	primary  Generator
	fallback Generator
	log      *logrus.Logger
}

func NewFailoverGenerator(primary, fallback Generator, log *logrus.Logger) *FailoverGenerator {
	return &FailoverGenerator{primary: primary, fallback: fallback, log: log}
}

func (g *FailoverGenerator) Dimension() int { return g.primary.Dimension() }

func (g *FailoverGenerator) Generate(ctx context.Context, text string) ([]float32, error) {
	vec, err := g.primary.Generate(ctx, text)
	if err == nil {
		return vec, nil
	}

	g.log.WithError(err).Warn("embedding model unavailable, using hash fallback")
	return g.fallback.Generate(ctx, text)
}
