package textgen

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	openai "github.com/sashabaranov/go-openai"

	"quotation_desk/internal/usecase/interfaces"
)

var ErrEmptyCompletion = errors.New("text generation returned no content")

var _ interfaces.ITextGenerator = (*OpenAIGenerator)(nil)

// OpenAIGenerator asks a chat completions model for the project description.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
	tries  uint
}

func NewOpenAIGenerator(apiKey, model, baseURL string, httpClient *http.Client) *OpenAIGenerator {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	cfg.HTTPClient = httpClient
	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		tries:  3,
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   200,
		Temperature: 0.7,
	}
	return backoff.Retry(ctx, func() (string, error) {
		return g.call(ctx, req)
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(g.tries))
}

func (g *OpenAIGenerator) call(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		if retryable(err) {
			return "", err
		}
		return "", backoff.Permanent(err)
	}
	if len(resp.Choices) == 0 {
		return "", backoff.Permanent(ErrEmptyCompletion)
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", backoff.Permanent(ErrEmptyCompletion)
	}
	return text, nil
}

// retryable reports throttling, server errors and transport failures.
func retryable(err error) bool {
	status := 0
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	default:
		return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
	}
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}
