package domain

import "time"

type FileStatus string

const (
	FilePending   FileStatus = "pending"
	FileRunning   FileStatus = "running"
	FileSucceeded FileStatus = "succeeded"
	FileFailed    FileStatus = "failed"
)

// InputFile: локальный файл, найденный при старте прогона.
type InputFile struct {
	Path string
	Name string
}

// FileResult: итог обработки одного файла.
type FileResult struct {
	File              string     `json:"file"`
	Status            FileStatus `json:"status"`
	Stage             string     `json:"stage,omitempty"`
	InputKey          string     `json:"input_key,omitempty"`
	JobName           string     `json:"job_name,omitempty"`
	TranscriptKey     string     `json:"transcript_key,omitempty"`
	TranscriptTextKey string     `json:"transcript_text_key,omitempty"`
	TranslationKey    string     `json:"translation_key,omitempty"`
	AudioKey          string     `json:"audio_key,omitempty"`
	VoiceID           string     `json:"voice_id,omitempty"`
	Error             string     `json:"error,omitempty"`
	StartedAt         time.Time  `json:"started_at"`
	FinishedAt        time.Time  `json:"finished_at,omitempty"`
}

// Report: результат всего прогона, в порядке обнаружения файлов.
type Report struct {
	RunID      string       `json:"run_id"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at,omitempty"`
	Files      []FileResult `json:"files"`
}

func (r Report) Succeeded() int { return r.count(FileSucceeded) }

func (r Report) Failed() int { return r.count(FileFailed) }

func (r Report) count(s FileStatus) int {
	n := 0
	for _, f := range r.Files {
		if f.Status == s {
			n++
		}
	}
	return n
}
