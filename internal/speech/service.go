package speech

import (
	"context"
	"fmt"
	"io"
)

// Voices maps a language code to a provider voice; Default covers the rest.
type Voices struct {
	ByLang  map[string]string
	Default string
}

// PollyVoices: статическая таблица голосов Amazon Polly
func PollyVoices() Voices {
	return Voices{
		ByLang: map[string]string{
			"de": "Vicki",
			"en": "Joanna",
			"fr": "Celine",
			"es": "Penelope",
		},
		Default: "Joanna",
	}
}

// SingleVoice: для провайдеров, где голос один на все языки
func SingleVoice(id string) Voices {
	return Voices{Default: id}
}

type Audio struct {
	VoiceID string
	Data    []byte
}

type Service struct {
	client Client
	voices Voices
}

func NewService(client Client, voices Voices) *Service {
	return &Service{
		client: client,
		voices: voices,
	}
}

func (s *Service) VoiceFor(lang string) string {
	if v, ok := s.voices.ByLang[lang]; ok {
		return v
	}
	return s.voices.Default
}

// Synthesize: TEXT → SPEECH голосом для lang
func (s *Service) Synthesize(ctx context.Context, text, lang string) (Audio, error) {
	voice := s.VoiceFor(lang)

	stream, err := s.client.Synthesize(ctx, voice, text)
	if err != nil {
		return Audio{}, fmt.Errorf("synthesize voice=%s: %w", voice, err)
	}
	defer stream.Close()

	data, err := io.ReadAll(stream)
	if err != nil {
		return Audio{}, fmt.Errorf("read audio stream voice=%s: %w", voice, err)
	}

	return Audio{VoiceID: voice, Data: data}, nil
}
