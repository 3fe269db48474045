package translation

import (
	"context"
	"fmt"
)

// Service translates from a fixed source language into the configured target.
type Service struct {
	client     Client
	sourceLang string
	targetLang string
}

func NewService(client Client, sourceLang, targetLang string) *Service {
	return &Service{
		client:     client,
		sourceLang: sourceLang,
		targetLang: targetLang,
	}
}

func (s *Service) Translate(ctx context.Context, text string) (string, error) {
	out, err := s.client.TranslateText(ctx, text, s.sourceLang, s.targetLang)
	if err != nil {
		return "", fmt.Errorf("translate %s->%s: %w", s.sourceLang, s.targetLang, err)
	}
	return out, nil
}
