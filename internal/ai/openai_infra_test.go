package ai

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

type fakeChat struct {
	req  openai.ChatCompletionRequest
	resp openai.ChatCompletionResponse
	err  error
}

func (f *fakeChat) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.req = req
	return f.resp, f.err
}

type fakeSpeech struct {
	req openai.CreateSpeechRequest
	err error
}

func (f *fakeSpeech) CreateSpeech(_ context.Context, req openai.CreateSpeechRequest) (openai.RawResponse, error) {
	f.req = req
	if f.err != nil {
		return openai.RawResponse{}, f.err
	}
	return openai.RawResponse{ReadCloser: io.NopCloser(strings.NewReader("ID3audio"))}, nil
}

func TestGetCompletion(t *testing.T) {
	chat := &fakeChat{resp: openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: "hola"}}},
	}}
	c := &OpenAIClient{chat: chat, model: "gpt-test"}

	got, err := c.GetCompletion(context.Background(), []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: "hello"},
	})
	if err != nil {
		t.Fatalf("GetCompletion() error = %v", err)
	}
	if got != "hola" {
		t.Fatalf("got %q", got)
	}
	if chat.req.Model != "gpt-test" {
		t.Fatalf("model = %q", chat.req.Model)
	}
}

func TestGetCompletionNoChoices(t *testing.T) {
	c := &OpenAIClient{chat: &fakeChat{}}
	got, err := c.GetCompletion(context.Background(), nil)
	if err != nil || got != "" {
		t.Fatalf("got %q, %v", got, err)
	}
}

func TestSpeech(t *testing.T) {
	speech := &fakeSpeech{}
	c := &OpenAIClient{speech: speech}

	rc, err := c.Speech(context.Background(), "nova", "hola")
	if err != nil {
		t.Fatalf("Speech() error = %v", err)
	}
	defer rc.Close()

	data, _ := io.ReadAll(rc)
	if string(data) != "ID3audio" {
		t.Fatalf("audio = %q", data)
	}
	if speech.req.Voice != openai.SpeechVoice("nova") || speech.req.Input != "hola" {
		t.Fatalf("request = %+v", speech.req)
	}
	if speech.req.ResponseFormat != openai.SpeechResponseFormatMp3 {
		t.Fatalf("format = %q", speech.req.ResponseFormat)
	}
}

func TestSpeechError(t *testing.T) {
	boom := errors.New("status code: 429")
	c := &OpenAIClient{speech: &fakeSpeech{err: boom}}
	if _, err := c.Speech(context.Background(), "alloy", "x"); !errors.Is(err, boom) {
		t.Fatalf("error = %v", err)
	}
}
