package embeddings

import (
	"context"
	"strings"
)

// Dimension is fixed across every stored embedding. Vectors produced by
// any strategy are conformed to this length before they reach storage.
const Dimension = 1536

// Generator produces a fixed-dimension vector for a piece of profile
// text. Implementations must be deterministic for identical input and
// must return the all-zero vector for empty or whitespace-only text.
type Generator interface {
	Generate(ctx context.Context, text string) ([]float32, error)
	Dimension() int
}

// ZeroVector returns the vector stored for empty source text.
func ZeroVector(dim int) []float32 {
	return make([]float32, dim)
}

// IsBlank reports whether text would embed to the zero vector.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// ConformDimension truncates or zero-pads a model vector to dim. Model
// upgrades must never leak a different dimension into the index.
func ConformDimension(vec []float32, dim int) []float32 {
	if len(vec) == dim {
		return vec
	}
	out := make([]float32, dim)
	copy(out, vec)
	return out
}
