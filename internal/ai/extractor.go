package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hance08/fixpay/internal/apperror"
	"github.com/hance08/fixpay/internal/config"
	"github.com/hance08/fixpay/internal/constants"
	"github.com/hance08/fixpay/internal/model"
	"github.com/hance08/fixpay/internal/service"
	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
)

const extractPrompt = `Analyze this QR code image. If it contains a UPI payment link or VPA, ` +
	`extract the UPI ID (e.g. username@bank), the payee or shop name if present, and guess the shop ` +
	`category from this list: %s. Reply with a JSON object {"upiId": string, "shopName": string, ` +
	`"category": string}. If no UPI ID is found, reply {"upiId": ""}.`

// MerchantExtractor reads merchant details off a photographed payment QR.
type MerchantExtractor struct {
	client  Client
	model   string
	timeout time.Duration
	log     zerolog.Logger
}

func NewMerchantExtractor(client Client, cfg config.AIConfig, log zerolog.Logger) *MerchantExtractor {
	return &MerchantExtractor{
		client:  client,
		model:   cfg.VisionModel,
		timeout: cfg.Timeout,
		log:     log,
	}
}

// Extract makes one attempt. It returns nil with no error when the image
// holds nothing that looks like a UPI ID. Cancelling ctx returns
// context.Canceled unwrapped so callers can fall back to manual entry.
func (e *MerchantExtractor) Extract(ctx context.Context, image []byte, mimeType string) (*model.MerchantGuess, error) {
	if e.client == nil {
		return nil, apperror.ErrMissingCredential()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	dataURI := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image))
	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{
					Type:     openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{URL: dataURI},
				},
				{
					Type: openai.ChatMessagePartTypeText,
					Text: fmt.Sprintf(extractPrompt, strings.Join(constants.Categories, ", ")),
				},
			},
		}},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			e.log.Debug().Msg("merchant extraction cancelled")
			return nil, context.Canceled
		}
		e.log.Warn().Err(err).Msg("merchant extraction request failed")
		return nil, apperror.ErrExtractionFailed(err)
	}
	if len(resp.Choices) == 0 {
		return nil, nil
	}

	guess, err := parseGuess(resp.Choices[0].Message.Content)
	if err != nil {
		e.log.Warn().Err(err).Msg("unreadable merchant extraction reply")
		return nil, apperror.ErrExtractionFailed(err)
	}
	if guess == nil {
		return nil, nil
	}

	e.log.Debug().Str("upi", guess.UPIID).Str("category", guess.Category).Msg("merchant extracted from image")
	return guess, nil
}

func parseGuess(content string) (*model.MerchantGuess, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	if content == "" || content == "NOT_FOUND" {
		return nil, nil
	}

	var guess model.MerchantGuess
	if err := json.Unmarshal([]byte(content), &guess); err != nil {
		return nil, fmt.Errorf("failed to decode reply: %w", err)
	}

	guess.UPIID = strings.TrimSpace(guess.UPIID)
	if !strings.Contains(guess.UPIID, "@") {
		return nil, nil
	}
	guess.ShopName = strings.TrimSpace(guess.ShopName)
	if guess.Category != "" {
		guess.Category = service.NormalizeCategory(guess.Category)
	}
	return &guess, nil
}
