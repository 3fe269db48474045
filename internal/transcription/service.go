package transcription

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Job is the tagged outcome of one transcription run. TranscriptKey is set only
// for StatusCompleted, FailureReason only for StatusFailed.
type Job struct {
	Name          string
	Status        JobStatus
	TranscriptKey string
	FailureReason string
	Polls         int
}

type Options struct {
	Bucket       string
	LanguageCode string
	MediaFormat  string
	PollInterval time.Duration
	MaxWait      time.Duration
	// OutputKey строит ключ JSON-результата по имени джобы
	OutputKey func(jobName string) string
}

type Runner struct {
	api     JobAPI
	opts    Options
	clock   Clock
	newName func() string
	log     *zap.SugaredLogger
}

func NewRunner(api JobAPI, opts Options, log *zap.SugaredLogger) *Runner {
	return &Runner{
		api:     api,
		opts:    opts,
		clock:   RealClock(),
		newName: NewJobName,
		log:     log,
	}
}

// WithClock подменяет часы (тесты).
func (r *Runner) WithClock(c Clock) *Runner {
	r.clock = c
	return r
}

// NewJobName: job-<uuid v4>, уникально для каждого вызова
func NewJobName() string {
	return "job-" + uuid.NewString()
}

// Transcribe submits a job for mediaURI and waits until it reaches a terminal
// state. A FAILED job is returned together with a *JobFailedError.
func (r *Runner) Transcribe(ctx context.Context, mediaURI string) (Job, error) {
	job := Job{Name: r.newName()}
	outputKey := r.opts.OutputKey(job.Name)

	err := r.api.StartJob(ctx, JobRequest{
		Name:         job.Name,
		MediaURI:     mediaURI,
		MediaFormat:  r.opts.MediaFormat,
		LanguageCode: r.opts.LanguageCode,
		OutputBucket: r.opts.Bucket,
		OutputKey:    outputKey,
	})
	if err != nil {
		return job, fmt.Errorf("start transcription job %s: %w", job.Name, err)
	}
	r.log.Infow("transcription job started", "job", job.Name, "media", mediaURI)

	state, err := r.wait(ctx, &job)
	if err != nil {
		return job, err
	}

	job.Status = state.Status
	if state.Status == StatusFailed {
		job.FailureReason = state.FailureReason
		r.log.Errorw("transcription job failed", "job", job.Name, "reason", state.FailureReason)
		return job, &JobFailedError{JobName: job.Name, Reason: state.FailureReason}
	}

	job.TranscriptKey = outputKey
	r.log.Infow("transcription job completed", "job", job.Name, "polls", job.Polls)
	return job, nil
}

func (r *Runner) wait(ctx context.Context, job *Job) (JobState, error) {
	deadline := r.clock.Now().Add(r.opts.MaxWait)

	for {
		state, err := r.api.GetJob(ctx, job.Name)
		job.Polls++
		if err != nil {
			return JobState{}, fmt.Errorf("get transcription job %s: %w", job.Name, err)
		}
		job.Status = state.Status
		if state.Status.Terminal() {
			return state, nil
		}

		if !r.clock.Now().Before(deadline) {
			return JobState{}, fmt.Errorf("job %s after %s: %w", job.Name, r.opts.MaxWait, ErrWaitTimeout)
		}

		select {
		case <-ctx.Done():
			return JobState{}, fmt.Errorf("wait for transcription job %s: %w", job.Name, ctx.Err())
		case <-r.clock.After(r.opts.PollInterval):
		}
	}
}
