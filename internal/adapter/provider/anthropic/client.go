// Package anthropic adapts the Anthropic Messages API to the completion
// boundary. The pipeline treats it as an opaque, potentially slow and
// unreliable remote function; failures map to domain.ErrUpstream.
package anthropic

import (
	"context"
	"errors"
	"fmt"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/linguacourse-backend/internal/config"
	"github.com/heartmarshall/linguacourse-backend/internal/domain"
	"github.com/heartmarshall/linguacourse-backend/internal/provider"
)

// Client calls the Anthropic Messages API.
type Client struct {
	api   anthropic.Client
	model anthropic.Model
}

// New creates a completion client from config.
func New(cfg config.LLMConfig) *Client {
	return &Client{
		api:   anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model: anthropic.Model(cfg.Model),
	}
}

// Complete sends one request and returns the model's reply text.
// The call blocks until the provider answers or ctx is done; there is no
// retry here; the caller decides what a failed generation means.
func (c *Client) Complete(ctx context.Context, req provider.Request) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: req.MaxTokens,
		Messages:  toMessages(req.Messages),
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature > 0 {
		params.Temperature = anthropic.Float(req.Temperature)
	}

	msg, err := c.api.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("completion call: %w", errors.Join(domain.ErrUpstream, err))
	}

	if len(msg.Content) == 0 {
		return "", fmt.Errorf("completion call: empty response: %w", domain.ErrUpstream)
	}

	return msg.Content[0].Text, nil
}

func toMessages(msgs []provider.Message) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, 0, len(msgs))
	for _, m := range msgs {
		block := anthropic.NewTextBlock(m.Text)
		if m.Role == domain.RoleAssistant {
			out = append(out, anthropic.NewAssistantMessage(block))
		} else {
			out = append(out, anthropic.NewUserMessage(block))
		}
	}
	return out
}
