// Package matching computes the similarity score between a job description's
// skills and a resume's skills via their embedding vectors.
package matching

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/embedding"
)

// CosineSimilarity computes dot(a,b) / (norm(a) * norm(b)).
// A zero-norm input or a dimension mismatch yields 0 rather than NaN.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Matcher scores skill-text pairs using a shared embedder.
type Matcher struct {
	embedder embedding.Embedder
}

// NewMatcher creates a Matcher backed by the given embedder.
func NewMatcher(embedder embedding.Embedder) *Matcher {
	return &Matcher{embedder: embedder}
}

// Score embeds both skills texts and returns their cosine similarity scaled
// to a 0-100 percentage. If either skills text is empty the score
// short-circuits to exactly 0.0 without invoking the embedder, avoiding an
// undefined similarity against a zero-norm vector.
func (m *Matcher) Score(ctx context.Context, jdSkillsText, resumeSkillsText string) (float64, error) {
	if jdSkillsText == "" || resumeSkillsText == "" {
		return 0.0, nil
	}

	var jdVec, resumeVec []float32
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		vec, err := m.embedder.Embed(gctx, jdSkillsText)
		jdVec = vec
		return err
	})
	g.Go(func() error {
		vec, err := m.embedder.Embed(gctx, resumeSkillsText)
		resumeVec = vec
		return err
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}

	return CosineSimilarity(jdVec, resumeVec) * 100, nil
}
