package transcription

import "context"

type JobStatus string

const (
	StatusQueued     JobStatus = "QUEUED"
	StatusInProgress JobStatus = "IN_PROGRESS"
	StatusCompleted  JobStatus = "COMPLETED"
	StatusFailed     JobStatus = "FAILED"
)

func (s JobStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// JobRequest: всё, что нужно сервису для старта джобы.
type JobRequest struct {
	Name         string
	MediaURI     string
	MediaFormat  string
	LanguageCode string
	OutputBucket string
	OutputKey    string
}

// JobState: ответ на опрос статуса.
type JobState struct {
	Status        JobStatus
	FailureReason string
}

// JobAPI: асинхронный сервис транскрибации (submit + poll).
type JobAPI interface {
	StartJob(ctx context.Context, req JobRequest) error
	GetJob(ctx context.Context, name string) (JobState, error)
}
