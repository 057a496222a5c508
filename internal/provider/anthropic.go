package provider

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/jasonsolar777/ai-receptionist/memory"
)

// DefaultAnthropicModel is used when no model override is configured.
const DefaultAnthropicModel = anthropic.ModelClaude3_5HaikuLatest

// maxReplyTokens bounds replies; the prompt already asks for two sentences.
const maxReplyTokens = 1024

// Anthropic completes transcripts via the Messages API. The SDK reads
// ANTHROPIC_API_KEY from the environment.
type Anthropic struct {
	client *anthropic.Client
	model  anthropic.Model
}

// NewAnthropic returns a backend using the ambient SDK credentials.
func NewAnthropic(model string) *Anthropic {
	c := anthropic.NewClient()
	return NewAnthropicWithClient(&c, model)
}

// NewAnthropicWithClient allows callers (tests) to inject a client with a
// fake transport.
func NewAnthropicWithClient(c *anthropic.Client, model string) *Anthropic {
	m := anthropic.Model(model)
	if model == "" {
		m = DefaultAnthropicModel
	}
	return &Anthropic{client: c, model: m}
}

func (a *Anthropic) Complete(ctx context.Context, system string, turns []memory.Turn) (string, error) {
	conv := make([]anthropic.MessageParam, 0, len(turns))
	for _, t := range turns {
		if t.Role == memory.RoleAssistant {
			conv = append(conv, anthropic.NewAssistantMessage(anthropic.NewTextBlock(t.Text)))
		} else {
			conv = append(conv, anthropic.NewUserMessage(anthropic.NewTextBlock(t.Text)))
		}
	}

	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       a.model,
		MaxTokens:   maxReplyTokens,
		Temperature: anthropic.Float(temperature),
		System:      []anthropic.TextBlockParam{{Text: system}},
		Messages:    conv,
	})
	if err != nil {
		return "", fmt.Errorf("messages: %w", err)
	}

	var reply string
	for _, b := range msg.Content {
		if tb, ok := b.AsAny().(anthropic.TextBlock); ok && tb.Text != "" {
			if reply != "" {
				reply += "\n"
			}
			reply += tb.Text
		}
	}
	return reply, nil
}
