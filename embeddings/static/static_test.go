package static

import (
	"context"
	"math"
	"testing"
)

func TestEmbedder_Deterministic(t *testing.T) {
	ctx := context.Background()
	embedder := New(32)

	first, err := embedder.EmbedQuery(ctx, "a dense forest with tall trees")
	if err != nil {
		t.Fatalf("EmbedQuery failed: %v", err)
	}
	second, err := embedder.EmbedQuery(ctx, "a dense forest with tall trees")
	if err != nil {
		t.Fatalf("EmbedQuery failed: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same text embedded differently at %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestEmbedder_UnitNorm(t *testing.T) {
	embedder := New(64)
	vectors, err := embedder.EmbedDocuments(context.Background(), []string{"ocean waves", "city skyline at night"})
	if err != nil {
		t.Fatalf("EmbedDocuments failed: %v", err)
	}
	for i, vector := range vectors {
		if len(vector) != 64 {
			t.Fatalf("vector %d has %d values, want 64", i, len(vector))
		}
		var norm float64
		for _, v := range vector {
			norm += float64(v) * float64(v)
		}
		if math.Abs(math.Sqrt(norm)-1.0) > 1e-5 {
			t.Fatalf("vector %d norm = %v, want 1.0", i, math.Sqrt(norm))
		}
	}
}

func TestEmbedder_DistinctTexts(t *testing.T) {
	embedder := New(32)
	vectors, err := embedder.EmbedDocuments(context.Background(), []string{"dark moody atmosphere", "bright and vibrant colorful scene"})
	if err != nil {
		t.Fatalf("EmbedDocuments failed: %v", err)
	}
	same := true
	for i := range vectors[0] {
		if vectors[0][i] != vectors[1][i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("distinct texts produced identical vectors")
	}
}
