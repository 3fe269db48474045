package speech

import (
	"context"
	"io"
)

// OutputFormat: все провайдеры отдают mp3, от него зависит расширение выходного файла
const OutputFormat = "mp3"

// Client: провайдер синтеза, текст + голос → аудиопоток (mp3)
type Client interface {
	Synthesize(ctx context.Context, voiceID, text string) (io.ReadCloser, error)
}
