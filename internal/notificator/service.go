package notificator

import (
	"context"
	"fmt"
	"strings"

	"github.com/Vovarama1992/dub_pipeline/internal/domain"
)

type Service struct {
	infra Notificator
}

func NewService(infra Notificator) *Service {
	return &Service{infra: infra}
}

func (s *Service) FileDone(ctx context.Context, res domain.FileResult) error {
	text := fmt.Sprintf(
		"✅ %s обработан\n\nГолос: %s\nАудио: %s\nПеревод: %s",
		res.File,
		res.VoiceID,
		res.AudioKey,
		res.TranslationKey,
	)
	return s.infra.Send(ctx, text)
}

func (s *Service) FileFailed(ctx context.Context, res domain.FileResult) error {
	text := fmt.Sprintf(
		"❗ Ошибка при обработке %s\n\nЭтап: %s\nОшибка: %s",
		res.File,
		res.Stage,
		res.Error,
	)
	return s.infra.Send(ctx, text)
}

func (s *Service) BatchDone(ctx context.Context, rep domain.Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Прогон %s завершён: %d ок, %d с ошибкой", rep.RunID, rep.Succeeded(), rep.Failed())
	for _, f := range rep.Files {
		if f.Status == domain.FileFailed {
			fmt.Fprintf(&b, "\n- %s (%s)", f.File, f.Stage)
		}
	}
	return s.infra.Send(ctx, b.String())
}
