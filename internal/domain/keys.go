package domain

import (
	"fmt"
	"path/filepath"
)

// KeyLayout строит ключи объектов в бакете. Префикс применяется ровно один раз.
type KeyLayout struct {
	Prefix string
	Lang   string
	// Format: расширение синтезированного аудио, не формат входных файлов
	Format string
}

func NewKeyLayout(prefix, lang, format string) KeyLayout {
	return KeyLayout{Prefix: prefix, Lang: lang, Format: format}
}

// Input: оригинальный аудиофайл.
func (l KeyLayout) Input(filename string) string {
	return fmt.Sprintf("%saudio_inputs/%s", l.Prefix, clean(filename))
}

// TranscriptJSON: куда сервис транскрибации пишет результат джобы.
func (l KeyLayout) TranscriptJSON(jobName string) string {
	return fmt.Sprintf("%stranscripts/%s.json", l.Prefix, jobName)
}

func (l KeyLayout) TranscriptText(filename string) string {
	return fmt.Sprintf("%stranscripts/%s_transcript.txt", l.Prefix, clean(filename))
}

func (l KeyLayout) TranslationText(filename string) string {
	return fmt.Sprintf("%stranscripts/%s_%s.txt", l.Prefix, clean(filename), l.Lang)
}

func (l KeyLayout) AudioOutput(filename string) string {
	return fmt.Sprintf("%saudio_outputs/%s_%s.%s", l.Prefix, clean(filename), l.Lang, l.Format)
}

func clean(filename string) string {
	return filepath.Base(filepath.ToSlash(filename))
}
