package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go/v2"
	openaioption "github.com/openai/openai-go/v2/option"

	"github.com/omph-chaplaincy/parish-core/internal/config"
)

// magisteriumPrompt frames the visitor's question for the hosted
// answer provider.
const magisteriumPrompt = "As a Catholic priest, answer this question with references to the Bible, Catechism, or Magisterium: %s"

// answerProvider generates an answer for questions the knowledge base
// cannot cover.
type answerProvider interface {
	Answer(ctx context.Context, question string) (string, error)
}

// openAIProvider calls an OpenAI-compatible chat completions endpoint
// (Magisterium AI in production).
type openAIProvider struct {
	client openai.Client
	model  string
}

func newOpenAIProvider(cfg config.ChatAIConfig) *openAIProvider {
	opts := []openaioption.RequestOption{
		openaioption.WithAPIKey(cfg.APIKey),
		openaioption.WithMaxRetries(1),
	}
	if endpoint := strings.TrimSpace(cfg.Endpoint); endpoint != "" {
		opts = append(opts, openaioption.WithBaseURL(strings.TrimRight(endpoint, "/")))
	}
	return &openAIProvider{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
	}
}

func (p *openAIProvider) Answer(ctx context.Context, question string) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(fmt.Sprintf(magisteriumPrompt, question)),
		},
		MaxTokens:   openai.Int(500),
		Temperature: openai.Float(0.7),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty response from answer provider")
	}
	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	if answer == "" {
		return "", errors.New("empty response from answer provider")
	}
	return answer, nil
}
