package speech

import (
	"context"
	"io"
)

type openAISpeaker interface {
	Speech(ctx context.Context, voice, text string) (io.ReadCloser, error)
}

// OpenAITTS: адаптер ai.OpenAIClient под speech.Client
type OpenAITTS struct {
	ai openAISpeaker
}

func NewOpenAITTS(ai openAISpeaker) *OpenAITTS {
	return &OpenAITTS{ai: ai}
}

func (t *OpenAITTS) Synthesize(ctx context.Context, voiceID, text string) (io.ReadCloser, error) {
	return t.ai.Speech(ctx, voiceID, text)
}
