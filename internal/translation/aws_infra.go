package translation

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/service/translate"
)

type AWSClient struct {
	svc *translate.Translate
}

func NewAWSClient(sess client.ConfigProvider) *AWSClient {
	return &AWSClient{svc: translate.New(sess)}
}

func (c *AWSClient) TranslateText(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	out, err := c.svc.TranslateTextWithContext(ctx, &translate.TextInput{
		Text:               aws.String(text),
		SourceLanguageCode: aws.String(sourceLang),
		TargetLanguageCode: aws.String(targetLang),
	})
	if err != nil {
		return "", err
	}
	return aws.StringValue(out.TranslatedText), nil
}
