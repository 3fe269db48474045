package ai

import (
	"context"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// chatAPI / speechAPI: то, что нужно от go-openai клиента
type chatAPI interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type speechAPI interface {
	CreateSpeech(ctx context.Context, req openai.CreateSpeechRequest) (openai.RawResponse, error)
}

type OpenAIClient struct {
	chat   chatAPI
	speech speechAPI
	model  string
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	c := openai.NewClient(apiKey)
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIClient{chat: c, speech: c, model: model}
}

func (c *OpenAIClient) GetCompletion(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	resp, err := c.chat.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// Speech: TEXT → SPEECH (mp3), поток закрывает вызывающий
func (c *OpenAIClient) Speech(ctx context.Context, voice, text string) (io.ReadCloser, error) {
	resp, err := c.speech.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.TTSModel1,
		Input:          text,
		Voice:          openai.SpeechVoice(voice),
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return nil, fmt.Errorf("openai speech: %w", err)
	}
	return resp, nil
}
