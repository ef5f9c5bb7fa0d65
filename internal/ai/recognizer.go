package ai

import (
	"context"
	"errors"
	"io"

	"github.com/hance08/fixpay/internal/apperror"
	"github.com/hance08/fixpay/internal/pos"
)

var errNoTranscribeModel = errors.New("ai.transcribe_model is not set")

// VoiceRecognizer pairs a microphone with the voice adapter for the POS
// dictation controller.
type VoiceRecognizer struct {
	mic   Microphone
	voice *VoiceAdapter
}

func NewVoiceRecognizer(mic Microphone, voice *VoiceAdapter) *VoiceRecognizer {
	return &VoiceRecognizer{mic: mic, voice: voice}
}

func (r *VoiceRecognizer) Open(ctx context.Context) (pos.Stream, error) {
	if r.voice == nil || r.voice.client == nil {
		return nil, apperror.ErrMissingCredential()
	}
	if r.voice.transcribeModel == "" {
		return nil, apperror.ErrDictationUnavailable(errNoTranscribeModel)
	}

	audio, err := r.mic.Open(ctx)
	if err != nil {
		return nil, err
	}
	return &voiceStream{audio: audio, voice: r.voice}, nil
}

type voiceStream struct {
	audio io.ReadCloser
	voice *VoiceAdapter
}

func (s *voiceStream) Run(ctx context.Context, emit func(amount float64)) error {
	return s.voice.Listen(ctx, s.audio, emit)
}

func (s *voiceStream) Close() error {
	return s.audio.Close()
}
