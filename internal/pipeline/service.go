package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Vovarama1992/dub_pipeline/internal/domain"
	"github.com/Vovarama1992/dub_pipeline/internal/ports"
	"github.com/Vovarama1992/dub_pipeline/internal/transcription"
)

type Options struct {
	InputDir string
	InputExt string
	WorkDir  string
	// ContinueOnError изолирует файлы, ошибка одного не останавливает остальные
	ContinueOnError bool
}

type Deps struct {
	Storage     ports.S3Service
	Transcriber Transcriber
	Translator  Translator
	Synthesizer Synthesizer
	Notifier    Notifier
	Records     Recorder
}

type Service struct {
	Deps
	keys    domain.KeyLayout
	opts    Options
	tracker *Tracker
	log     *zap.SugaredLogger

	now      func() time.Time
	newRunID func() string
}

func NewService(deps Deps, keys domain.KeyLayout, opts Options, log *zap.SugaredLogger) *Service {
	return &Service{
		Deps:     deps,
		keys:     keys,
		opts:     opts,
		tracker:  NewTracker(),
		log:      log,
		now:      time.Now,
		newRunID: uuid.NewString,
	}
}

func (s *Service) Tracker() *Tracker {
	return s.tracker
}

// Discover lists regular files (symlinks resolved) in InputDir with the
// configured extension, by name.
func (s *Service) Discover() ([]domain.InputFile, error) {
	entries, err := os.ReadDir(s.opts.InputDir)
	if err != nil {
		return nil, fmt.Errorf("read input dir %s: %w", s.opts.InputDir, err)
	}

	var files []domain.InputFile
	for _, e := range entries {
		if filepath.Ext(e.Name()) != s.opts.InputExt {
			continue
		}
		path := filepath.Join(s.opts.InputDir, e.Name())
		// Stat идёт по симлинкам; битые ссылки и каталоги пропускаем
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, domain.InputFile{Path: path, Name: e.Name()})
	}
	return files, nil
}

// Run processes every discovered file in order. Without ContinueOnError the
// first failure stops the batch and the remaining files stay pending. Any
// failure makes Run return an error.
func (s *Service) Run(ctx context.Context) (domain.Report, error) {
	report := domain.Report{
		RunID:     s.newRunID(),
		StartedAt: s.now(),
	}

	files, err := s.Discover()
	if err != nil {
		return report, err
	}

	for _, f := range files {
		report.Files = append(report.Files, domain.FileResult{File: f.Name, Status: domain.FilePending})
	}
	s.tracker.start(report)
	s.log.Infow("run started", "run_id", report.RunID, "files", len(files), "input_dir", s.opts.InputDir)

	var firstErr error
	for i, f := range files {
		// отмена (SIGINT/SIGTERM) останавливает прогон даже с ContinueOnError
		if err := ctx.Err(); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			s.log.Warnw("run cancelled", "run_id", report.RunID, "remaining", len(files)-i)
			break
		}

		res, err := s.processOne(ctx, i, f)
		report.Files[i] = res
		s.tracker.set(i, res)
		s.afterFile(ctx, report.RunID, res)

		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			if !s.opts.ContinueOnError {
				s.log.Errorw("run aborted", "run_id", report.RunID, "file", f.Name, "remaining", len(files)-i-1)
				break
			}
		}
	}

	report.FinishedAt = s.now()
	s.tracker.finish(report)

	bg := context.WithoutCancel(ctx)
	if err := s.Notifier.BatchDone(bg, report); err != nil {
		s.log.Warnw("batch notification failed", "error", err)
	}
	s.log.Infow("run finished",
		"run_id", report.RunID,
		"succeeded", report.Succeeded(),
		"failed", report.Failed(),
		"took", report.FinishedAt.Sub(report.StartedAt).String(),
	)

	if firstErr != nil {
		return report, fmt.Errorf("%d of %d files failed: %w", report.Failed(), len(files), firstErr)
	}
	return report, nil
}

func (s *Service) processOne(ctx context.Context, i int, f domain.InputFile) (domain.FileResult, error) {
	res := domain.FileResult{
		File:      f.Name,
		Status:    domain.FileRunning,
		StartedAt: s.now(),
	}
	s.tracker.set(i, res)

	err := s.ProcessFile(ctx, f, &res)
	res.FinishedAt = s.now()

	if err != nil {
		res.Status = domain.FileFailed
		res.Error = err.Error()
		var se *StageError
		if errors.As(err, &se) {
			res.Stage = se.Stage
		}
		s.log.Errorw("file failed", "file", f.Name, "stage", res.Stage, "error", err)
		return res, err
	}

	res.Status = domain.FileSucceeded
	s.log.Infow("file processed", "file", f.Name, "voice", res.VoiceID, "audio_key", res.AudioKey)
	return res, nil
}

// учёт и уведомления не должны ронять прогон
func (s *Service) afterFile(ctx context.Context, runID string, res domain.FileResult) {
	bg := context.WithoutCancel(ctx)

	if err := s.Records.Save(bg, runID, res); err != nil {
		s.log.Warnw("record save failed", "file", res.File, "error", err)
	}

	var err error
	if res.Status == domain.FileFailed {
		err = s.Notifier.FileFailed(bg, res)
	} else {
		err = s.Notifier.FileDone(bg, res)
	}
	if err != nil {
		s.log.Warnw("notification failed", "file", res.File, "error", err)
	}
}

// ProcessFile runs upload → transcribe → extract → translate → synthesize →
// upload outputs for a single file, filling res as keys become known.
func (s *Service) ProcessFile(ctx context.Context, f domain.InputFile, res *domain.FileResult) error {
	fail := func(stage string, err error) error {
		return &StageError{Stage: stage, File: f.Name, Err: err}
	}

	work, err := os.MkdirTemp(s.opts.WorkDir, "dub-*")
	if err != nil {
		return fail(StageWorkspace, err)
	}
	defer os.RemoveAll(work)

	// 1) оригинал в бакет
	res.InputKey = s.keys.Input(f.Name)
	if err := s.Storage.Upload(ctx, f.Path, res.InputKey); err != nil {
		return fail(StageUpload, err)
	}
	s.log.Infow("uploaded input", "file", f.Name, "key", res.InputKey)

	// 2) транскрибация (ждём терминального статуса)
	job, err := s.Transcriber.Transcribe(ctx, s.Storage.URI(res.InputKey))
	res.JobName = job.Name
	if err != nil {
		return fail(StageTranscribe, err)
	}
	res.TranscriptKey = job.TranscriptKey

	// 3) JSON результата → текст
	jsonPath := filepath.Join(work, "transcript.json")
	if err := s.Storage.Download(ctx, res.TranscriptKey, jsonPath); err != nil {
		return fail(StageDownloadTranscript, err)
	}
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return fail(StageExtract, fmt.Errorf("%w: %v", transcription.ErrMalformedTranscript, err))
	}
	text, err := transcription.ExtractTranscript(data)
	if err != nil {
		return fail(StageExtract, err)
	}
	s.log.Infow("transcript extracted", "file", f.Name, "job", job.Name, "chars", len(text))

	// 4) перевод
	translated, err := s.Translator.Translate(ctx, text)
	if err != nil {
		return fail(StageTranslate, err)
	}
	s.log.Infow("transcript translated", "file", f.Name, "lang", s.keys.Lang, "chars", len(translated))

	// 5) синтез
	audio, err := s.Synthesizer.Synthesize(ctx, translated, s.keys.Lang)
	if err != nil {
		return fail(StageSynthesize, err)
	}
	res.VoiceID = audio.VoiceID
	s.log.Infow("speech synthesized", "file", f.Name, "voice", audio.VoiceID, "bytes", len(audio.Data))

	// 6) три артефакта
	outputs := []struct {
		path string
		key  string
		data []byte
	}{
		{filepath.Join(work, "transcript.txt"), s.keys.TranscriptText(f.Name), []byte(text)},
		{filepath.Join(work, "translated.txt"), s.keys.TranslationText(f.Name), []byte(translated)},
		{filepath.Join(work, "audio."+s.keys.Format), s.keys.AudioOutput(f.Name), audio.Data},
	}
	for _, out := range outputs {
		if err := os.WriteFile(out.path, out.data, 0644); err != nil {
			return fail(StageWriteOutputs, err)
		}
	}
	for _, out := range outputs {
		if err := s.Storage.Upload(ctx, out.path, out.key); err != nil {
			return fail(StageUploadOutputs, err)
		}
	}

	res.TranscriptTextKey = outputs[0].key
	res.TranslationKey = outputs[1].key
	res.AudioKey = outputs[2].key
	return nil
}
