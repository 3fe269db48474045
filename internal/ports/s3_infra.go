package ports

import "context"

// Низкоуровневый клиент к S3 (один бакет)
type S3Client interface {
	Bucket() string
	UploadFile(ctx context.Context, key, localPath, contentType string) error
	DownloadFile(ctx context.Context, key, localPath string) error
}
