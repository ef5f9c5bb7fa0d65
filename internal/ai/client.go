package ai

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

import (
	"context"

	"github.com/hance08/fixpay/internal/apperror"
	"github.com/hance08/fixpay/internal/config"
	"github.com/sashabaranov/go-openai"
)

// Client is the subset of the OpenAI API used by FixPay. Any
// OpenAI-compatible endpoint works; the default is Gemini's.
type Client interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
	CreateTranscription(ctx context.Context, req openai.AudioRequest) (openai.AudioResponse, error)
}

// NewClient returns ErrMissingCredential when no API key is configured.
func NewClient(cfg config.AIConfig) (Client, error) {
	if cfg.APIKey == "" {
		return nil, apperror.ErrMissingCredential()
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return openai.NewClientWithConfig(clientCfg), nil
}
