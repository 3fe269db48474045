package speech

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/service/polly"
)

type PollyClient struct {
	svc    *polly.Polly
	format string
}

func NewPollyClient(sess client.ConfigProvider) *PollyClient {
	return &PollyClient{
		svc:    polly.New(sess),
		format: polly.OutputFormatMp3,
	}
}

func (c *PollyClient) Synthesize(ctx context.Context, voiceID, text string) (io.ReadCloser, error) {
	out, err := c.svc.SynthesizeSpeechWithContext(ctx, &polly.SynthesizeSpeechInput{
		OutputFormat: aws.String(c.format),
		Text:         aws.String(text),
		VoiceId:      aws.String(voiceID),
	})
	if err != nil {
		return nil, err
	}
	return out.AudioStream, nil
}
