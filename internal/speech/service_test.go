package speech

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

type fakeClient struct {
	voice, text string
	stream      *closeTracker
	err         error
}

func (f *fakeClient) Synthesize(_ context.Context, voiceID, text string) (io.ReadCloser, error) {
	f.voice, f.text = voiceID, text
	if f.err != nil {
		return nil, f.err
	}
	f.stream = &closeTracker{Reader: strings.NewReader("ID3" + voiceID)}
	return f.stream, nil
}

func TestPollyVoiceSelection(t *testing.T) {
	svc := NewService(&fakeClient{}, PollyVoices())

	mapped := map[string]string{
		"de": "Vicki",
		"en": "Joanna",
		"fr": "Celine",
		"es": "Penelope",
	}
	for lang, want := range mapped {
		if got := svc.VoiceFor(lang); got != want {
			t.Fatalf("VoiceFor(%q) = %q, want %q", lang, got, want)
		}
	}

	for _, lang := range []string{"cy", "it", "ja", "", "ES", "en-US"} {
		if got := svc.VoiceFor(lang); got != "Joanna" {
			t.Fatalf("VoiceFor(%q) = %q, want default Joanna", lang, got)
		}
	}
}

func TestSingleVoice(t *testing.T) {
	svc := NewService(&fakeClient{}, SingleVoice("alloy"))
	for _, lang := range []string{"de", "es", "cy"} {
		if got := svc.VoiceFor(lang); got != "alloy" {
			t.Fatalf("VoiceFor(%q) = %q", lang, got)
		}
	}
}

func TestSynthesize(t *testing.T) {
	client := &fakeClient{}
	svc := NewService(client, PollyVoices())

	audio, err := svc.Synthesize(context.Background(), "hola", "es")
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if audio.VoiceID != "Penelope" || client.voice != "Penelope" {
		t.Fatalf("voice = %q / %q", audio.VoiceID, client.voice)
	}
	if client.text != "hola" {
		t.Fatalf("text = %q", client.text)
	}
	if string(audio.Data) != "ID3Penelope" {
		t.Fatalf("data = %q", audio.Data)
	}
	if !client.stream.closed {
		t.Fatal("audio stream was not closed")
	}
}

func TestSynthesizeError(t *testing.T) {
	boom := errors.New("TextLengthExceededException")
	svc := NewService(&fakeClient{err: boom}, PollyVoices())

	_, err := svc.Synthesize(context.Background(), "x", "cy")
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v", err)
	}
	if !strings.Contains(err.Error(), "voice=Joanna") {
		t.Fatalf("error %q should name the voice", err)
	}
}
