package transcription

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/service/transcribeservice"
)

// AWSClient: JobAPI поверх Amazon Transcribe.
type AWSClient struct {
	svc *transcribeservice.TranscribeService
}

func NewAWSClient(sess client.ConfigProvider) *AWSClient {
	return &AWSClient{svc: transcribeservice.New(sess)}
}

func (c *AWSClient) StartJob(ctx context.Context, req JobRequest) error {
	_, err := c.svc.StartTranscriptionJobWithContext(ctx, &transcribeservice.StartTranscriptionJobInput{
		TranscriptionJobName: aws.String(req.Name),
		Media:                &transcribeservice.Media{MediaFileUri: aws.String(req.MediaURI)},
		MediaFormat:          aws.String(req.MediaFormat),
		LanguageCode:         aws.String(req.LanguageCode),
		OutputBucketName:     aws.String(req.OutputBucket),
		OutputKey:            aws.String(req.OutputKey),
	})
	return err
}

func (c *AWSClient) GetJob(ctx context.Context, name string) (JobState, error) {
	out, err := c.svc.GetTranscriptionJobWithContext(ctx, &transcribeservice.GetTranscriptionJobInput{
		TranscriptionJobName: aws.String(name),
	})
	if err != nil {
		return JobState{}, err
	}
	if out.TranscriptionJob == nil {
		return JobState{Status: StatusInProgress}, nil
	}

	return JobState{
		Status:        JobStatus(aws.StringValue(out.TranscriptionJob.TranscriptionJobStatus)),
		FailureReason: aws.StringValue(out.TranscriptionJob.FailureReason),
	}, nil
}
