package mocks

import "context"

// Embedder is a mock implementation of ports.Embedder that returns a
// fixed-size vector derived from the text length.
type Embedder struct {
	Dim   int
	Calls []string
	Err   error
}

// NewEmbedder creates a new mock Embedder.
func NewEmbedder() *Embedder {
	return &Embedder{Dim: 4}
}

// Embed generates a deterministic fake embedding.
func (m *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vecs, err := m.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

// EmbedBatch generates deterministic fake embeddings.
func (m *Embedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([][]float32, len(texts))
	for i, text := range texts {
		m.Calls = append(m.Calls, text)
		vec := make([]float32, m.Dim)
		for j := range vec {
			vec[j] = float32(len(text))
		}
		out[i] = vec
	}
	return out, nil
}
