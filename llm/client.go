package llm

import (
	"context"
	"errors"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Completer is the outbound chat-completion call. Handlers depend on this
// interface so tests can swap the hosted model for a stub.
type Completer interface {
	Complete(ctx context.Context, content []llms.MessageContent) (string, error)
}

type Client struct {
	llm *openai.LLM
}

func NewClient(options ...openai.Option) (*Client, error) {
	llmClient, err := openai.New(options...)
	if err != nil {
		return nil, err
	}

	return &Client{llm: llmClient}, nil
}

func (client *Client) Complete(ctx context.Context, content []llms.MessageContent) (string, error) {
	output, err := client.llm.GenerateContent(ctx, content,
		llms.WithMaxTokens(1024),
		llms.WithTemperature(0.3),
	)
	if err != nil {
		return "", err
	}

	if len(output.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}

	return output.Choices[0].Content, nil
}
