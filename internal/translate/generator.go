// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package translate

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// ErrEmptyResponse is returned when the API answers without any text.
var ErrEmptyResponse = errors.New("translate: the AI returned an empty response")

// Completion is one generated answer.
type Completion struct {
	Text string
	// Truncated is set when generation stopped at the output length limit.
	Truncated bool
}

// Generator produces text from a system instruction and a user prompt.
type Generator interface {
	Complete(ctx context.Context, system, prompt string) (Completion, error)
}

// OpenAIGenerator talks to any OpenAI-compatible chat completion endpoint.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

// NewOpenAIGenerator returns a generator for the endpoint at baseURL.
// An empty baseURL keeps the client library's default.
func NewOpenAIGenerator(apiKey, baseURL, model string) *OpenAIGenerator {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIGenerator{client: openai.NewClientWithConfig(config), model: model}
}

// Complete sends a single system + user exchange.
func (generator *OpenAIGenerator) Complete(ctx context.Context, system, prompt string) (Completion, error) {
	response, err := generator.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: generator.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return Completion{}, fmt.Errorf("translate: chat completion: %w", err)
	}

	if len(response.Choices) == 0 {
		return Completion{}, ErrEmptyResponse
	}

	choice := response.Choices[0]
	return Completion{
		Text:      choice.Message.Content,
		Truncated: choice.FinishReason == openai.FinishReasonLength,
	}, nil
}
