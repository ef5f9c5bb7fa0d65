package ai

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hance08/fixpay/internal/ai/mocks"
	"github.com/hance08/fixpay/internal/apperror"
	"github.com/hance08/fixpay/internal/config"
	"github.com/hance08/fixpay/internal/constants"
	"github.com/hance08/fixpay/internal/model"
	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func reply(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{
			Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content},
		}},
	}
}

func newExtractor(t *testing.T) (*MerchantExtractor, *mocks.MockClient) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	return NewMerchantExtractor(client, config.NewDefault().AI, zerolog.Nop()), client
}

func TestMerchantExtractor_Extract_Success(t *testing.T) {
	extractor, client := newExtractor(t)

	client.EXPECT().CreateChatCompletion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
			require.Len(t, req.Messages, 1)
			parts := req.Messages[0].MultiContent
			require.Len(t, parts, 2)
			assert.True(t, strings.HasPrefix(parts[0].ImageURL.URL, "data:image/png;base64,"))
			assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONObject, req.ResponseFormat.Type)
			return reply(`{"upiId":"ravi@okaxis","shopName":"Ravi Tea Stall","category":"Tea Shop"}`), nil
		})

	guess, err := extractor.Extract(context.Background(), []byte{0x89, 'P', 'N', 'G'}, "image/png")
	require.NoError(t, err)
	assert.Equal(t, &model.MerchantGuess{UPIID: "ravi@okaxis", ShopName: "Ravi Tea Stall", Category: constants.CategoryTeaShop}, guess)
}

func TestMerchantExtractor_Extract_NothingUsable(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty id", `{"upiId":""}`},
		{"no at sign", `{"upiId":"ravi.okaxis","shopName":"Ravi"}`},
		{"not found marker", "NOT_FOUND"},
		{"blank", "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extractor, client := newExtractor(t)
			client.EXPECT().CreateChatCompletion(gomock.Any(), gomock.Any()).Return(reply(tt.content), nil)

			guess, err := extractor.Extract(context.Background(), []byte("img"), "")
			require.NoError(t, err)
			assert.Nil(t, guess)
		})
	}
}

func TestMerchantExtractor_Extract_FencedJSON(t *testing.T) {
	extractor, client := newExtractor(t)
	client.EXPECT().CreateChatCompletion(gomock.Any(), gomock.Any()).
		Return(reply("```json\n{\"upiId\":\"shop@ybl\",\"category\":\"bakery\"}\n```"), nil)

	guess, err := extractor.Extract(context.Background(), []byte("img"), "image/jpeg")
	require.NoError(t, err)
	require.NotNil(t, guess)
	assert.Equal(t, "shop@ybl", guess.UPIID)
	assert.Equal(t, constants.CategoryOther, guess.Category)
}

func TestMerchantExtractor_Extract_Failures(t *testing.T) {
	extractor, client := newExtractor(t)
	client.EXPECT().CreateChatCompletion(gomock.Any(), gomock.Any()).Return(openai.ChatCompletionResponse{}, errors.New("timeout"))

	_, err := extractor.Extract(context.Background(), []byte("img"), "")
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindExternal))
	assert.Equal(t, "Error processing image. Please enter manually.", apperror.Message(err))

	client.EXPECT().CreateChatCompletion(gomock.Any(), gomock.Any()).Return(reply("not json at all"), nil)
	_, err = extractor.Extract(context.Background(), []byte("img"), "")
	assert.True(t, apperror.IsKind(err, apperror.KindExternal))
}

func TestMerchantExtractor_MissingCredential(t *testing.T) {
	extractor := NewMerchantExtractor(nil, config.NewDefault().AI, zerolog.Nop())

	_, err := extractor.Extract(context.Background(), []byte("img"), "")
	assert.True(t, apperror.IsKind(err, apperror.KindExternal))
}

func TestNewClient_RequiresKey(t *testing.T) {
	_, err := NewClient(config.AIConfig{})
	assert.True(t, apperror.IsKind(err, apperror.KindExternal))

	client, err := NewClient(config.AIConfig{APIKey: "k", BaseURL: "http://localhost:1/v1"})
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestMerchantExtractor_Extract_CancelledBeforeRequest(t *testing.T) {
	extractor, _ := newExtractor(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	guess, err := extractor.Extract(ctx, []byte("img"), "image/png")
	assert.Nil(t, guess)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMerchantExtractor_Extract_CancelledInFlight(t *testing.T) {
	extractor, client := newExtractor(t)

	ctx, cancel := context.WithCancel(context.Background())
	client.EXPECT().CreateChatCompletion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
			cancel()
			<-ctx.Done()
			return openai.ChatCompletionResponse{}, ctx.Err()
		})

	start := time.Now()
	guess, err := extractor.Extract(ctx, []byte("img"), "image/png")
	assert.Nil(t, guess)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, apperror.IsKind(err, apperror.KindExternal))
	assert.Less(t, time.Since(start), time.Second)
}
