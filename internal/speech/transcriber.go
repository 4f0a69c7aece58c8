package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"voicesketch/internal/metrics"
	"voicesketch/internal/utils"
)

// Failures a Transcriber reports. Callers match them with errors.Is.
var (
	ErrNoSpeech           = errors.New("no speech detected")
	ErrUnintelligible     = errors.New("could not understand audio")
	ErrServiceUnavailable = errors.New("speech service unavailable")
	ErrDeviceUnavailable  = errors.New("audio input unavailable")
)

// Transcriber turns recorded audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error)
}

// AudioClient is the part of *openai.Client used for transcription.
type AudioClient interface {
	CreateTranscription(ctx context.Context, request openai.AudioRequest) (openai.AudioResponse, error)
}

// WhisperTranscriber sends audio to an OpenAI-compatible transcription
// endpoint.
type WhisperTranscriber struct {
	client AudioClient
	model  string
	log    *zap.Logger
}

// NewWhisperTranscriber builds a transcriber for apiKey. With an empty key
// the transcriber is created but every call fails with
// ErrServiceUnavailable.
func NewWhisperTranscriber(apiKey, baseURL, model string, log *zap.Logger) *WhisperTranscriber {
	var client AudioClient
	if apiKey != "" {
		config := openai.DefaultConfig(apiKey)
		if baseURL != "" {
			config.BaseURL = baseURL
		}
		client = openai.NewClientWithConfig(config)
	}
	return NewWhisperTranscriberWithClient(client, model, log)
}

// NewWhisperTranscriberWithClient wraps an existing client. An empty model
// selects whisper-1.
func NewWhisperTranscriberWithClient(client AudioClient, model string, log *zap.Logger) *WhisperTranscriber {
	if model == "" {
		model = openai.Whisper1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &WhisperTranscriber{client: client, model: model, log: log}
}

// Transcribe converts one uploaded clip to trimmed text.
func (t *WhisperTranscriber) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	text, err := t.transcribe(ctx, filename, audio)
	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = metrics.OutcomeError
		t.log.Warn("transcription failed", zap.String("file", filename), zap.Error(err))
	}
	metrics.TranscriptionsTotal.WithLabelValues(outcome).Inc()
	return text, err
}

func (t *WhisperTranscriber) transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	if audio == nil {
		return "", ErrDeviceUnavailable
	}
	if t.client == nil {
		return "", fmt.Errorf("%w: no speech API key configured", ErrServiceUnavailable)
	}
	if filename == "" {
		filename = "recording.wav"
	}

	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.model,
		FilePath: filename,
		Reader:   audio,
	})
	if err != nil {
		return "", classifyError(err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", ErrNoSpeech
	}
	return text, nil
}

func classifyError(err error) error {
	if utils.IsTransient(err) {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusBadRequest, http.StatusUnsupportedMediaType, http.StatusUnprocessableEntity:
			return fmt.Errorf("%w: %s", ErrUnintelligible, apiErr.Message)
		}
	}
	return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
}
