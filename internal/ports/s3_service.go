package ports

import "context"

// S3Service: storage gateway for pipeline artifacts.
type S3Service interface {
	Upload(ctx context.Context, localPath, key string) error
	Download(ctx context.Context, key, localPath string) error
	// URI: s3://bucket/key, в таком виде ключ ждёт сервис транскрибации
	URI(key string) string
}
