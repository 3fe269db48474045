package translation

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type completer interface {
	GetCompletion(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error)
}

// OpenAIClient переводит через chat completion
type OpenAIClient struct {
	ai completer
}

func NewOpenAIClient(ai completer) *OpenAIClient {
	return &OpenAIClient{ai: ai}
}

func (c *OpenAIClient) TranslateText(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	prompt := fmt.Sprintf(
		"Translate the user's text from language %q to language %q (ISO 639-1 codes). "+
			"Reply with the translation only: no quotes, no notes, keep line breaks.",
		sourceLang, targetLang,
	)

	out, err := c.ai.GetCompletion(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: prompt},
		{Role: openai.ChatMessageRoleUser, Content: text},
	})
	if err != nil {
		return "", err
	}

	out = strings.TrimSpace(out)
	if out == "" && strings.TrimSpace(text) != "" {
		return "", fmt.Errorf("empty translation")
	}
	return out, nil
}
