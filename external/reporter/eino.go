package reporter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/foxseedlab/nokchwi/internal/reporter"
)

type ChatModelConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type chatGenerator interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

type ChatModelGenerator struct {
	chatModel chatGenerator
	model     string
}

func NewChatModelGenerator(ctx context.Context, cfg ChatModelConfig) (reporter.Generator, error) {
	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("init chat model: %w", err)
	}
	return &ChatModelGenerator{chatModel: cm, model: cfg.Model}, nil
}

func (g *ChatModelGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	slog.Debug("requesting analysis report", "model", g.model, "prompt_chars", len([]rune(prompt)))
	resp, err := g.chatModel.Generate(ctx, []*schema.Message{
		schema.UserMessage(prompt),
	})
	if err != nil {
		return "", fmt.Errorf("generate report: %w", err)
	}
	if resp == nil {
		return "", nil
	}
	return strings.TrimSpace(resp.Content), nil
}
