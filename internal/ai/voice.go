package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hance08/fixpay/internal/apperror"
	"github.com/hance08/fixpay/internal/config"
	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

const (
	updateAmountTool = "updateAmount"
	voicePrompt      = "You are a backend for a POS system. Listen to the cashier. When they state a final bill " +
		"amount, call `updateAmount` with the number. Do not speak. Only call the tool."
	maxTurns = 5
)

var updateAmountDef = openai.Tool{
	Type: openai.ToolTypeFunction,
	Function: &openai.FunctionDefinition{
		Name:        updateAmountTool,
		Description: "Updates the POS amount when the user states a monetary value.",
		Parameters: jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"amount": {Type: jsonschema.Number, Description: "The amount in rupees."},
			},
			Required: []string{"amount"},
		},
	},
}

type updateAmountArgs struct {
	Amount float64 `json:"amount"`
}

// VoiceAdapter turns a PCM stream into updateAmount calls. Audio is cut into
// fixed chunks, each chunk is transcribed and the transcript is handed to a
// chat model that may call updateAmount.
type VoiceAdapter struct {
	client          Client
	chatModel       string
	transcribeModel string
	chunk           time.Duration
	log             zerolog.Logger
}

func NewVoiceAdapter(client Client, ai config.AIConfig, dictation config.DictationConfig, log zerolog.Logger) *VoiceAdapter {
	chunk := dictation.Chunk
	if chunk <= 0 {
		chunk = 4 * time.Second
	}
	return &VoiceAdapter{
		client:          client,
		chatModel:       ai.ChatModel,
		transcribeModel: ai.TranscribeModel,
		chunk:           chunk,
		log:             log,
	}
}

// Listen reads audio until it ends or ctx is cancelled. Each updateAmount
// call is passed to emit and acknowledged to the model before the next chunk.
func (v *VoiceAdapter) Listen(ctx context.Context, audio io.Reader, emit func(amount float64)) error {
	if v.client == nil {
		return apperror.ErrMissingCredential()
	}

	chunkBytes := int(v.chunk.Seconds() * bytesPerSec)
	chunkBytes -= chunkBytes % 2
	buf := make([]byte, chunkBytes)

	var turns [][]openai.ChatCompletionMessage
	for {
		n, readErr := io.ReadFull(audio, buf)
		if ctx.Err() != nil {
			return nil
		}

		if n > 0 {
			turn, err := v.recognize(ctx, buf[:n], turns, emit)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
			if turn != nil {
				turns = append(turns, turn)
				if len(turns) > maxTurns {
					turns = turns[len(turns)-maxTurns:]
				}
			}
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) || errors.Is(readErr, io.ErrUnexpectedEOF) {
				return nil
			}
			return fmt.Errorf("failed to read audio: %w", readErr)
		}
	}
}

// recognize handles one chunk and returns the messages it added to the
// conversation, or nil when nothing was said.
func (v *VoiceAdapter) recognize(ctx context.Context, pcm []byte, history [][]openai.ChatCompletionMessage, emit func(float64)) ([]openai.ChatCompletionMessage, error) {
	tr, err := v.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    v.transcribeModel,
		FilePath: "chunk.wav",
		Reader:   bytes.NewReader(encodeWAV(pcm)),
	})
	if err != nil {
		return nil, fmt.Errorf("transcription failed: %w", err)
	}

	text := strings.TrimSpace(tr.Text)
	if text == "" {
		return nil, nil
	}

	turn := []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: text}}
	messages := []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleSystem, Content: voicePrompt}}
	for _, past := range history {
		messages = append(messages, past...)
	}
	messages = append(messages, turn...)

	resp, err := v.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    v.chatModel,
		Messages: messages,
		Tools:    []openai.Tool{updateAmountDef},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return turn, nil
	}

	reply := resp.Choices[0].Message
	turn = append(turn, reply)

	for _, call := range reply.ToolCalls {
		result := `{"result":"ok"}`
		if call.Function.Name != updateAmountTool {
			result = `{"result":"unknown tool"}`
		} else {
			var args updateAmountArgs
			if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil || args.Amount <= 0 {
				v.log.Debug().Str("args", call.Function.Arguments).Msg("ignoring updateAmount call")
				result = `{"result":"ignored"}`
			} else {
				v.log.Debug().Float64("amount", args.Amount).Msg("amount dictated")
				emit(args.Amount)
			}
		}

		turn = append(turn, openai.ChatCompletionMessage{
			Role:       openai.ChatMessageRoleTool,
			Content:    result,
			Name:       call.Function.Name,
			ToolCallID: call.ID,
		})
	}

	return turn, nil
}
