package domain

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"

	"github.com/Vovarama1992/dub_pipeline/internal/ports"
	"go.uber.org/zap"
)

type s3Service struct {
	client ports.S3Client
	log    *zap.SugaredLogger
}

func NewS3Service(client ports.S3Client, log *zap.SugaredLogger) ports.S3Service {
	return &s3Service{client: client, log: log}
}

func (s *s3Service) Upload(ctx context.Context, localPath, key string) error {
	if key == "" {
		return fmt.Errorf("object key required")
	}

	if err := s.client.UploadFile(ctx, key, localPath, ContentType(localPath)); err != nil {
		return fmt.Errorf("upload %s to %s: %w", localPath, s.URI(key), err)
	}
	s.log.Debugw("object uploaded", "key", key, "bucket", s.client.Bucket())
	return nil
}

func (s *s3Service) Download(ctx context.Context, key, localPath string) error {
	if err := s.client.DownloadFile(ctx, key, localPath); err != nil {
		return fmt.Errorf("download %s: %w", s.URI(key), err)
	}
	s.log.Debugw("object downloaded", "key", key, "path", localPath)
	return nil
}

func (s *s3Service) URI(key string) string {
	return fmt.Sprintf("s3://%s/%s", s.client.Bucket(), key)
}

// ContentType по расширению файла; неизвестное: application/octet-stream
func ContentType(path string) string {
	switch ext := filepath.Ext(path); ext {
	case ".mp3":
		return "audio/mpeg"
	case ".txt":
		return "text/plain; charset=utf-8"
	case ".json":
		return "application/json"
	default:
		if t := mime.TypeByExtension(ext); t != "" {
			return t
		}
		return "application/octet-stream"
	}
}
