package classifier

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"

	"movie-assistant/internal/common/config"
	"movie-assistant/internal/common/errors"
	"movie-assistant/internal/common/logger"
)

// AnthropicProvider classifies user text with an Anthropic model through
// langchaingo. One call per user turn, no conversation memory.
type AnthropicProvider struct {
	llm          *anthropic.LLM
	systemPrompt string
	maxTokens    int
	timeout      time.Duration
	logger       logger.Logger
}

func NewAnthropicProvider(cfg config.ClassifierConfig, log logger.Logger) (*AnthropicProvider, error) {
	llm, err := anthropic.New(
		anthropic.WithToken(cfg.APIKey),
		anthropic.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize anthropic client: %w", err)
	}

	prompt := SystemPrompt
	if cfg.PromptFile != "" {
		data, err := os.ReadFile(cfg.PromptFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read prompt file %s: %w", cfg.PromptFile, err)
		}
		if strings.TrimSpace(string(data)) == "" {
			return nil, fmt.Errorf("prompt file %s is empty", cfg.PromptFile)
		}
		prompt = strings.TrimSpace(string(data))
	}

	return &AnthropicProvider{
		llm:          llm,
		systemPrompt: prompt,
		maxTokens:    cfg.MaxTokens,
		timeout:      cfg.Timeout,
		logger:       log.With(map[string]interface{}{"component": "classifier"}),
	}, nil
}

// Classify sends the user text with the fixed instruction preamble and
// returns the model's raw reply.
func (p *AnthropicProvider) Classify(ctx context.Context, userText string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	content := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, p.systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, userText),
	}

	resp, err := p.llm.GenerateContent(ctx, content,
		llms.WithMaxTokens(p.maxTokens),
		llms.WithTemperature(0.1), // Low temperature for consistent directives
	)
	if err != nil {
		return "", errors.NewClassifierTimeoutError(err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.NewClassifierOutputError("classifier returned no choices")
	}

	raw := resp.Choices[0].Content
	p.logger.Debug("raw classifier reply", map[string]interface{}{
		"reply": raw,
	})

	return raw, nil
}
