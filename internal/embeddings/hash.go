package embeddings

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

// HashGenerator derives a deterministic pseudo-embedding from sha256
// digests of the text. Not semantically meaningful, but identical input
// always yields identical vectors, which keeps similarity search and
// tests working when no embedding model is reachable.
type HashGenerator struct {
	dim int
}

func NewHashGenerator() *HashGenerator {
	return &HashGenerator{dim: Dimension}
}

func (g *HashGenerator) Dimension() int { return g.dim }

func (g *HashGenerator) Generate(ctx context.Context, text string) ([]float32, error) {
	if IsBlank(text) {
		return ZeroVector(g.dim), nil
	}

	vec := make([]float32, g.dim)
	for i := range vec {
		h := sha256.Sum256([]byte(fmt.Sprintf("%s_%d", text, i)))
		// First 4 digest bytes mapped onto [-1, 1].
		v := binary.BigEndian.Uint32(h[:4])
		vec[i] = float32(float64(v)/float64(0xFFFFFFFF))*2 - 1
	}
	return vec, nil
}
