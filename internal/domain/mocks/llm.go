package mocks

import (
	"context"

	"github.com/emryn/chronicle/internal/domain/entities"
	"github.com/emryn/chronicle/internal/domain/ports"
)

// LLM is a mock implementation of ports.LLMClient returning canned
// connection proposals.
type LLM struct {
	Suggestions []entities.Connection
	LastInput   ports.SuggestionInput
	Err         error
}

// NewLLM creates a new mock LLM.
func NewLLM() *LLM {
	return &LLM{}
}

// SuggestConnections returns the canned proposals.
func (m *LLM) SuggestConnections(_ context.Context, input ports.SuggestionInput) ([]entities.Connection, error) {
	m.LastInput = input
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Suggestions, nil
}
