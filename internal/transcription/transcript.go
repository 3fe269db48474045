package transcription

import (
	"encoding/json"
	"fmt"
)

// формат результата Amazon Transcribe, нужен только первый вариант
type transcriptDoc struct {
	Results *struct {
		Transcripts []struct {
			Transcript *string `json:"transcript"`
		} `json:"transcripts"`
	} `json:"results"`
}

// ExtractTranscript returns results.transcripts[0].transcript unmodified.
func ExtractTranscript(data []byte) (string, error) {
	var doc transcriptDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedTranscript, err)
	}

	if doc.Results == nil {
		return "", fmt.Errorf("%w: missing results", ErrMalformedTranscript)
	}
	if len(doc.Results.Transcripts) == 0 {
		return "", fmt.Errorf("%w: no transcripts", ErrMalformedTranscript)
	}
	if doc.Results.Transcripts[0].Transcript == nil {
		return "", fmt.Errorf("%w: missing transcript text", ErrMalformedTranscript)
	}

	return *doc.Results.Transcripts[0].Transcript, nil
}
