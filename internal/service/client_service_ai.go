package service

import (
	"context"
	"io"
	"strings"

	"github.com/MKhiriev/summarium/internal/adapter"
	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/models"
)

type clientAIService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientAIService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAIService {
	return &clientAIService{adapter: serverAdapter, logger: logger}
}

func (s *clientAIService) OnTabRequested(ctx context.Context, currentNodeText string) (string, error) {
	if strings.TrimSpace(currentNodeText) == "" {
		return "", nil
	}
	text, err := s.adapter.Suggestion(ctx, currentNodeText)
	if err != nil {
		s.logger.Err(err).Str("func", "clientAIService.OnTabRequested").Msg("suggestion failed")
		return "", mapAdapterError(err)
	}
	return text, nil
}

func (s *clientAIService) Complete(ctx context.Context, prompt string, onDelta func(string)) error {
	if err := s.adapter.Completion(ctx, prompt, onDelta); err != nil {
		s.logger.Err(err).Str("func", "clientAIService.Complete").Msg("completion failed")
		return mapAdapterError(err)
	}
	return nil
}

func (s *clientAIService) Chat(ctx context.Context, messages []models.ChatMessage, onDelta func(string)) error {
	if err := s.adapter.Tools(ctx, messages, onDelta); err != nil {
		s.logger.Err(err).Str("func", "clientAIService.Chat").Int("messages", len(messages)).Msg("chat failed")
		return mapAdapterError(err)
	}
	return nil
}

func (s *clientAIService) Transcribe(ctx context.Context, filename string, audio io.Reader, onWord func(string)) error {
	if err := s.adapter.Transcribe(ctx, filename, audio, onWord); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.logger.Err(err).Str("func", "clientAIService.Transcribe").Str("file", filename).Msg("transcription failed")
		return mapAdapterError(err)
	}
	return nil
}

func (s *clientAIService) Speech(ctx context.Context, id, text string) ([]string, error) {
	resp, err := s.adapter.Speech(ctx, models.SpeechRequest{ID: id, Text: text})
	if err != nil {
		s.logger.Err(err).Str("func", "clientAIService.Speech").Str("id", id).Msg("speech failed")
		return nil, mapAdapterError(err)
	}
	return resp.URLs, nil
}
