package pipeline

import "fmt"

const (
	StageWorkspace          = "workspace"
	StageUpload             = "upload"
	StageTranscribe         = "transcribe"
	StageDownloadTranscript = "download_transcript"
	StageExtract            = "extract"
	StageTranslate          = "translate"
	StageSynthesize         = "synthesize"
	StageWriteOutputs       = "write_outputs"
	StageUploadOutputs      = "upload_outputs"
)

// StageError is a per-file failure tagged with the step that produced it.
type StageError struct {
	Stage string
	File  string
	Err   error
}

func (e *StageError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s: %v", e.File, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
