package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/sashabaranov/go-openai"
)

// Gemini's OpenAI-compatible endpoint. The gateway speaks the chat-completions
// protocol, so the provider is swappable by base URL alone.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

const DefaultModel = "gemini-2.5-pro"

// GeminiClient implements Client on top of the OpenAI-compatible API.
type GeminiClient struct {
	modelName string
	client    *openai.Client
	limiter   *RateLimiter // nil means unlimited
}

func NewGeminiClient(apiKey, baseURL, modelName string, limiter *RateLimiter) *GeminiClient {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL

	return &GeminiClient{
		modelName: modelName,
		client:    openai.NewClientWithConfig(config),
		limiter:   limiter,
	}
}

func (g *GeminiClient) completion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionMessage, error) {
	if g.limiter != nil {
		if err := g.limiter.Allow(); err != nil {
			return openai.ChatCompletionMessage{}, err
		}
	}
	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return openai.ChatCompletionMessage{}, fmt.Errorf("llm: upstream call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return openai.ChatCompletionMessage{}, fmt.Errorf("llm: upstream returned no choices")
	}
	return resp.Choices[0].Message, nil
}

func (g *GeminiClient) Generate(ctx context.Context, req Request) (string, error) {
	chatReq := openai.ChatCompletionRequest{
		Model: g.modelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		// Low temperature keeps the JSON output stable.
		Temperature: 0.2,
	}
	if req.JSONOnly {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	msg, err := g.completion(ctx, chatReq)
	if err != nil {
		return "", err
	}
	return msg.Content, nil
}

func (g *GeminiClient) GenerateWithTool(ctx context.Context, req Request, tool openai.Tool, run ToolRunner) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: req.System},
		{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
	}
	chatReq := openai.ChatCompletionRequest{
		Model:       g.modelName,
		Messages:    messages,
		Tools:       []openai.Tool{tool},
		Temperature: 0.2,
	}

	first, err := g.completion(ctx, chatReq)
	if err != nil {
		return "", err
	}
	if len(first.ToolCalls) == 0 {
		// The model hallucinated an answer instead of invoking the tool.
		return "", fmt.Errorf("%w: model said %q", ErrNoToolCall, truncate(first.Content, 100))
	}

	call := first.ToolCalls[0]
	result, err := run(call.Function.Name, json.RawMessage(call.Function.Arguments))
	if err != nil {
		return "", fmt.Errorf("llm: tool %s failed: %w", call.Function.Name, err)
	}
	slog.Debug("tool executed", "tool", call.Function.Name, "result", truncate(result, 80))

	chatReq.Messages = append(messages, first, openai.ChatCompletionMessage{
		Role:       openai.ChatMessageRoleTool,
		Content:    result,
		ToolCallID: call.ID,
	})

	second, err := g.completion(ctx, chatReq)
	if err != nil {
		return "", err
	}
	return second.Content, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
