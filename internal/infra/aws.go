package infra

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
)

// NewAWSSession: сессия для Transcribe / Translate / Polly. Те же статические
// ключи, что и у S3-клиента, чтобы весь прогон шёл под одной учёткой;
// без ключей: стандартная цепочка (env, ~/.aws, IAM роль).
func NewAWSSession(region, accessKey, secretKey string) (*session.Session, error) {
	cfg := &aws.Config{Region: aws.String(region)}
	if accessKey != "" {
		cfg.Credentials = credentials.NewStaticCredentials(accessKey, secretKey, "")
	}

	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("aws session: %w", err)
	}
	return sess, nil
}
