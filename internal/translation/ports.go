package translation

import "context"

// Client: провайдер перевода (Amazon Translate, OpenAI)
type Client interface {
	TranslateText(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}
