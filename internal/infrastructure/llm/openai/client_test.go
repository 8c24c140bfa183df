package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emryn/chronicle/internal/domain/entities"
	"github.com/emryn/chronicle/internal/domain/ports"
	"github.com/emryn/chronicle/internal/infrastructure/config"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LLMConfig
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid config",
			cfg: config.LLMConfig{
				APIKey: "test-key",
			},
			wantErr: false,
		},
		{
			name: "valid config with model",
			cfg: config.LLMConfig{
				APIKey: "test-key",
				Model:  "gpt-4",
			},
			wantErr: false,
		},
		{
			name:    "missing API key",
			cfg:     config.LLMConfig{},
			wantErr: true,
			errMsg:  "API key is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.cfg)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, client)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, client)
			}
		})
	}
}

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain JSON",
			input:    `[{"target": "Bilbo"}]`,
			expected: `[{"target": "Bilbo"}]`,
		},
		{
			name:     "JSON with json code block",
			input:    "```json\n[{\"target\": \"Bilbo\"}]\n```",
			expected: `[{"target": "Bilbo"}]`,
		},
		{
			name:     "JSON with plain code block",
			input:    "```\n[{\"target\": \"Bilbo\"}]\n```",
			expected: `[{"target": "Bilbo"}]`,
		},
		{
			name:     "JSON with whitespace",
			input:    "  \n[{\"target\": \"Bilbo\"}]\n  ",
			expected: `[{"target": "Bilbo"}]`,
		},
		{
			name:     "empty array",
			input:    "[]",
			expected: "[]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanJSONResponse(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestBuildUserMessage(t *testing.T) {
	msg := buildUserMessage(ports.SuggestionInput{
		Name:        "Frodo",
		Kind:        entities.KindCharacter,
		Description: "A hobbit of the Shire.",
		Known:       []string{"Bilbo", "The Shire"},
	})

	assert.Contains(t, msg, "Entity: Frodo (character)")
	assert.Contains(t, msg, "Description: A hobbit of the Shire.")
	assert.Contains(t, msg, "- Bilbo")
	assert.Contains(t, msg, "- The Shire")
}
