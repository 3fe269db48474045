package infra

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Vovarama1992/dub_pipeline/internal/domain"
)

const recordsSchema = `
CREATE TABLE IF NOT EXISTS dub_file_results (
	id                  BIGSERIAL PRIMARY KEY,
	run_id              TEXT        NOT NULL,
	file_name           TEXT        NOT NULL,
	status              TEXT        NOT NULL,
	stage               TEXT,
	input_key           TEXT,
	job_name            TEXT,
	transcript_key      TEXT,
	transcript_text_key TEXT,
	translation_key     TEXT,
	audio_key           TEXT,
	voice_id            TEXT,
	error               TEXT,
	started_at          TIMESTAMPTZ NOT NULL,
	finished_at         TIMESTAMPTZ NOT NULL
)`

// RecordRepo: журнал результатов по файлам (только запись, для аудита)
type RecordRepo struct {
	db *sql.DB
}

func NewRecordRepo(db *sql.DB) *RecordRepo {
	return &RecordRepo{db: db}
}

// EnsureRecordsSchema создаёт таблицу журнала, если её ещё нет
func EnsureRecordsSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, recordsSchema); err != nil {
		return fmt.Errorf("create dub_file_results: %w", err)
	}
	return nil
}

func (r *RecordRepo) Save(ctx context.Context, runID string, res domain.FileResult) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO dub_file_results (
			run_id, file_name, status, stage, input_key, job_name,
			transcript_key, transcript_text_key, translation_key, audio_key,
			voice_id, error, started_at, finished_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`,
		runID, res.File, string(res.Status), nullable(res.Stage), nullable(res.InputKey), nullable(res.JobName),
		nullable(res.TranscriptKey), nullable(res.TranscriptTextKey), nullable(res.TranslationKey), nullable(res.AudioKey),
		nullable(res.VoiceID), nullable(res.Error), res.StartedAt, res.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("save result %s: %w", res.File, err)
	}
	return nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// NopRecordRepo: когда DATABASE_URL не задан
type NopRecordRepo struct{}

func (NopRecordRepo) Save(context.Context, string, domain.FileResult) error { return nil }
