// Package openai provides an LLMClient implementation using OpenAI.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/emryn/chronicle/internal/domain/entities"
	"github.com/emryn/chronicle/internal/domain/ports"
	"github.com/emryn/chronicle/internal/infrastructure/config"
)

const suggestionPrompt = `You are a relationship extractor for fictional worlds. Given an entity and its description, propose connections to other entities in the same world.

For each connection, identify:
- target: The name of the connected entity. Must be one of the known entities listed by the user.
- type: One of ally, enemy, family, rival, romantic, mentor, acquaintance, neutral, custom
- label: A short phrase describing the connection (e.g. "owns", "sworn enemy of"), or empty

Only propose connections the description actually supports. Return ONLY a valid JSON array, no other text. Return empty array [] if the description supports no connections.

Example:
Input: Frodo (character): "A hobbit of the Shire, nephew of Bilbo, carrier of the One Ring."
Output: [
  {"target": "Bilbo", "type": "family", "label": "nephew of"},
  {"target": "One Ring", "type": "neutral", "label": "carries"}
]`

// Client implements the LLMClient interface using OpenAI.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates a new OpenAI LLM client.
func NewClient(cfg config.LLMConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	client := openai.NewClient(cfg.APIKey)

	model := "gpt-4o-mini"
	if cfg.Model != "" {
		model = cfg.Model
	}

	return &Client{
		client: client,
		model:  model,
	}, nil
}

// SuggestConnections proposes typed connections for an entity based on its
// free-text description.
func (c *Client) SuggestConnections(ctx context.Context, input ports.SuggestionInput) ([]entities.Connection, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: suggestionPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildUserMessage(input),
			},
		},
		Temperature: 0.1,
	})
	if err != nil {
		return nil, fmt.Errorf("calling OpenAI: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("no response from OpenAI")
	}

	content := resp.Choices[0].Message.Content
	content = cleanJSONResponse(content)

	var rawConns []rawConnection
	if err := json.Unmarshal([]byte(content), &rawConns); err != nil {
		return nil, fmt.Errorf("parsing connections JSON: %w (response: %s)", err, content)
	}

	conns := make([]entities.Connection, 0, len(rawConns))
	for _, rc := range rawConns {
		if rc.Target == "" {
			continue
		}
		conns = append(conns, entities.Connection{
			Target: rc.Target,
			Type:   entities.RelationshipType(rc.Type),
			Label:  rc.Label,
		})
	}

	return conns, nil
}

// rawConnection is the JSON structure for proposed connections.
type rawConnection struct {
	Target string `json:"target"`
	Type   string `json:"type"`
	Label  string `json:"label,omitempty"`
}

// buildUserMessage formats the suggestion input for the model.
func buildUserMessage(input ports.SuggestionInput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Entity: %s (%s)\n", input.Name, input.Kind)
	fmt.Fprintf(&sb, "Description: %s\n", input.Description)
	sb.WriteString("Known entities:\n")
	for _, name := range input.Known {
		fmt.Fprintf(&sb, "- %s\n", name)
	}
	return sb.String()
}

// cleanJSONResponse removes markdown code blocks if present.
func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
	}

	return strings.TrimSpace(content)
}
