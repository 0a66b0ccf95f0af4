package matching

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEmbedder returns deterministic vectors derived from the input text so
// tests can steer similarity without a provider.
type fakeEmbedder struct {
	vectors map[string][]float32
	err     error
	calls   int
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if vec, ok := f.vectors[text]; ok {
		return vec, nil
	}
	// Default: a crude bag-of-words vector over a tiny vocabulary, enough to
	// make overlapping texts similar and disjoint texts orthogonal.
	vocab := []string{"python", "sql", "go", "design", "photoshop", "kubernetes"}
	vec := make([]float32, len(vocab))
	lower := strings.ToLower(text)
	for i, word := range vocab {
		if strings.Contains(lower, word) {
			vec[i] = 1
		}
	}
	return vec, nil
}

func (f *fakeEmbedder) Model() string { return "fake-embedding-model" }
func (f *fakeEmbedder) Close() error  { return nil }

func TestCosineSimilarity_IdenticalVectors(t *testing.T) {
	v := []float32{0.3, -1.2, 4.5, 0.01}

	sim := CosineSimilarity(v, v)
	assert.InDelta(t, 1.0, sim, 1e-9)
}

func TestCosineSimilarity_OrthogonalVectors(t *testing.T) {
	a := []float32{1, 0, 0}
	b := []float32{0, 1, 0}

	assert.InDelta(t, 0.0, CosineSimilarity(a, b), 1e-9)
}

func TestCosineSimilarity_OppositeVectors(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{-1, -2, -3}

	assert.InDelta(t, -1.0, CosineSimilarity(a, b), 1e-9)
}

func TestCosineSimilarity_Guards(t *testing.T) {
	assert.Equal(t, 0.0, CosineSimilarity(nil, nil))
	assert.Equal(t, 0.0, CosineSimilarity([]float32{1}, nil))
	assert.Equal(t, 0.0, CosineSimilarity([]float32{1, 2}, []float32{1}))
	assert.Equal(t, 0.0, CosineSimilarity([]float32{0, 0}, []float32{1, 1}))
	assert.False(t, math.IsNaN(CosineSimilarity([]float32{0}, []float32{0})))
}

func TestScore_IdenticalSkillsTextIs100(t *testing.T) {
	matcher := NewMatcher(&fakeEmbedder{})

	score, err := matcher.Score(context.Background(), `{"Python", "SQL"}`, `{"Python", "SQL"}`)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, score, 0.01)
}

func TestScore_EmptySkillsShortCircuits(t *testing.T) {
	embedder := &fakeEmbedder{}
	matcher := NewMatcher(embedder)

	score, err := matcher.Score(context.Background(), "", `{"Python"}`)
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)

	score, err = matcher.Score(context.Background(), `{"Python"}`, "")
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)

	assert.Zero(t, embedder.calls, "embedder must not be invoked for empty skills text")
}

func TestScore_HighOverlap(t *testing.T) {
	matcher := NewMatcher(&fakeEmbedder{})

	score, err := matcher.Score(context.Background(),
		`{"Python", "SQL"}`,
		`{"Python", "SQL", "Go"}`)
	require.NoError(t, err)
	assert.Greater(t, score, 50.0)
}

func TestScore_DisjointSkills(t *testing.T) {
	matcher := NewMatcher(&fakeEmbedder{})

	score, err := matcher.Score(context.Background(),
		`{"Go", "Kubernetes"}`,
		`{"Design", "Photoshop"}`)
	require.NoError(t, err)
	assert.Less(t, score, 50.0)
}

func TestScore_EmbedderError(t *testing.T) {
	matcher := NewMatcher(&fakeEmbedder{err: errors.New("provider down")})

	_, err := matcher.Score(context.Background(), `{"Python"}`, `{"SQL"}`)
	assert.Error(t, err)
}
