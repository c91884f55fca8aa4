package embeddings

import (
	"context"
	"testing"
)

func TestHashGeneratorDeterministic(t *testing.T) {
	g := NewHashGenerator()

	a, err := g.Generate(context.Background(), "climate tech startup in Berlin")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	b, err := g.Generate(context.Background(), "climate tech startup in Berlin")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if len(a) != Dimension {
		t.Fatalf("vector length = %d, want %d", len(a), Dimension)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("vectors differ at index %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestHashGeneratorDistinctTexts(t *testing.T) {
	g := NewHashGenerator()

	a, _ := g.Generate(context.Background(), "fintech reporter")
	b, _ := g.Generate(context.Background(), "healthcare startup")

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different texts produced identical vectors")
	}
}

func TestHashGeneratorRange(t *testing.T) {
	g := NewHashGenerator()

	vec, _ := g.Generate(context.Background(), "range check")
	for i, v := range vec {
		if v < -1 || v > 1 {
			t.Fatalf("component %d = %v outside [-1, 1]", i, v)
		}
	}
}

func TestBlankTextEmbedsToZeroVector(t *testing.T) {
	g := NewHashGenerator()

	for _, text := range []string{"", "   ", "\n\t"} {
		vec, err := g.Generate(context.Background(), text)
		if err != nil {
			t.Fatalf("Generate(%q) error: %v", text, err)
		}
		for i, v := range vec {
			if v != 0 {
				t.Fatalf("Generate(%q)[%d] = %v, want 0", text, i, v)
			}
		}
	}
}

func TestConformDimension(t *testing.T) {
	tests := []struct {
		name string
		in   int
		dim  int
	}{
		{"shorter gets padded", 4, 8},
		{"longer gets truncated", 8, 4},
		{"equal passes through", 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := make([]float32, tt.in)
			for i := range in {
				in[i] = float32(i + 1)
			}

			out := ConformDimension(in, tt.dim)
			if len(out) != tt.dim {
				t.Fatalf("len = %d, want %d", len(out), tt.dim)
			}
			n := tt.in
			if tt.dim < n {
				n = tt.dim
			}
			for i := 0; i < n; i++ {
				if out[i] != in[i] {
					t.Fatalf("prefix changed at %d: %v vs %v", i, out[i], in[i])
				}
			}
			for i := n; i < tt.dim; i++ {
				if out[i] != 0 {
					t.Fatalf("padding at %d = %v, want 0", i, out[i])
				}
			}
		})
	}
}
