package transcription

import (
	"errors"
	"fmt"
)

var (
	ErrJobFailed           = errors.New("transcription job failed")
	ErrWaitTimeout         = errors.New("transcription job wait timed out")
	ErrMalformedTranscript = errors.New("error reading transcript JSON file, please try again")
)

// JobFailedError: сервис довёл джобу до FAILED.
type JobFailedError struct {
	JobName string
	Reason  string
}

func (e *JobFailedError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("transcription job %s failed", e.JobName)
	}
	return fmt.Sprintf("transcription job %s failed: %s", e.JobName, e.Reason)
}

func (e *JobFailedError) Is(target error) bool {
	return target == ErrJobFailed
}
