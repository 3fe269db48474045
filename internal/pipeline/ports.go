package pipeline

import (
	"context"

	"github.com/Vovarama1992/dub_pipeline/internal/domain"
	"github.com/Vovarama1992/dub_pipeline/internal/speech"
	"github.com/Vovarama1992/dub_pipeline/internal/transcription"
)

type Transcriber interface {
	Transcribe(ctx context.Context, mediaURI string) (transcription.Job, error)
}

type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

type Synthesizer interface {
	Synthesize(ctx context.Context, text, lang string) (speech.Audio, error)
}

type Notifier interface {
	FileDone(ctx context.Context, res domain.FileResult) error
	FileFailed(ctx context.Context, res domain.FileResult) error
	BatchDone(ctx context.Context, rep domain.Report) error
}

// Recorder: журнал результатов (postgres или ничего)
type Recorder interface {
	Save(ctx context.Context, runID string, res domain.FileResult) error
}
