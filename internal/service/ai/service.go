package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/config"
	"github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/model/task"
)

var (
	ErrEmptyText         = errors.New("text is required")
	ErrEmptyCompletion   = errors.New("model returned an empty completion")
	ErrStreamingDisabled = errors.New("streaming disabled in configuration")
)

// Service runs the one-shot summarize and paraphrase pipelines over a chat
// model. It holds no session state; every call carries everything it needs.
type Service struct {
	chatModel model.ChatModel
	cfg       config.AIConfig
	chain     compose.Runnable[map[string]any, *schema.Message]
}

// NewService compiles the prompt chain around an injected chat model.
func NewService(ctx context.Context, chatModel model.ChatModel, cfg config.AIConfig) (*Service, error) {
	if chatModel == nil {
		return nil, errors.New("chat model is required")
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.UserMessage("{text}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile pipeline chain: %w", err)
	}

	return &Service{
		chatModel: chatModel,
		cfg:       cfg,
		chain:     runnable,
	}, nil
}

// StreamingEnabled reports whether streamed completions may be served.
func (s *Service) StreamingEnabled() bool {
	return s.cfg.StreamResponse
}

// GetChatModel returns the underlying chat model.
func (s *Service) GetChatModel() model.ChatModel {
	return s.chatModel
}

// Summarize condenses text using the given method and target length. It
// issues exactly one model call; failures surface without retry.
func (s *Service) Summarize(ctx context.Context, text string, method task.Method, length task.Length) (string, error) {
	input, opts, err := s.summarizeInput(text, method, length)
	if err != nil {
		return "", err
	}
	return s.invoke(ctx, "summarize", input, opts)
}

// Paraphrase rewrites text in fresh wording while preserving its meaning.
// One model call per invocation regardless of text size.
func (s *Service) Paraphrase(ctx context.Context, text string) (string, error) {
	input, opts, err := s.paraphraseInput(text)
	if err != nil {
		return "", err
	}
	return s.invoke(ctx, "paraphrase", input, opts)
}

// StreamSummarize streams summary chunks through the compiled chain.
func (s *Service) StreamSummarize(ctx context.Context, text string, method task.Method, length task.Length) (*schema.StreamReader[*schema.Message], error) {
	if !s.StreamingEnabled() {
		return nil, ErrStreamingDisabled
	}

	input, opts, err := s.summarizeInput(text, method, length)
	if err != nil {
		return nil, err
	}

	stream, err := s.chain.Stream(ctx, input, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to stream completion: %w", err)
	}
	return stream, nil
}

// StreamParaphrase streams paraphrase chunks through the compiled chain.
func (s *Service) StreamParaphrase(ctx context.Context, text string) (*schema.StreamReader[*schema.Message], error) {
	if !s.StreamingEnabled() {
		return nil, ErrStreamingDisabled
	}

	input, opts, err := s.paraphraseInput(text)
	if err != nil {
		return nil, err
	}

	stream, err := s.chain.Stream(ctx, input, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to stream completion: %w", err)
	}
	return stream, nil
}

func (s *Service) invoke(ctx context.Context, op string, input map[string]any, opts []compose.Option) (string, error) {
	msg, err := s.chain.Invoke(ctx, input, opts...)
	if err != nil {
		return "", fmt.Errorf("inference failed: %w", err)
	}
	if msg == nil {
		return "", ErrEmptyCompletion
	}

	output := strings.TrimSpace(msg.Content)
	if output == "" {
		return "", ErrEmptyCompletion
	}

	log.Printf("[ai] %s completed, output length=%d", op, len(output))
	return output, nil
}

func (s *Service) summarizeInput(text string, method task.Method, length task.Length) (map[string]any, []compose.Option, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil, ErrEmptyText
	}

	system, err := summarySystemPrompt(method, length)
	if err != nil {
		return nil, nil, err
	}

	return map[string]any{
		"system": system,
		"text":   trimmed,
	}, s.callOptions(length), nil
}

func (s *Service) paraphraseInput(text string) (map[string]any, []compose.Option, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil, ErrEmptyText
	}

	return map[string]any{
		"system": paraphraseSystemPrompt,
		"text":   trimmed,
	}, s.callOptions(""), nil
}

// callOptions caps the completion size per summary length unless AI_MAX_TOKENS
// pins a global cap through the model config.
func (s *Service) callOptions(length task.Length) []compose.Option {
	if s.cfg.MaxTokens != nil {
		return nil
	}

	target, ok := summaryTargets[length]
	if !ok {
		return nil
	}
	return []compose.Option{compose.WithChatModelOption(model.WithMaxTokens(target.MaxTokens))}
}
