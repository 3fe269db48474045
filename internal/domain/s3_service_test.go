package domain

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
)

type fakeS3Client struct {
	bucket    string
	uploads   []upload
	downloads map[string]string
	err       error
}

type upload struct {
	key, path, contentType string
}

func (f *fakeS3Client) Bucket() string { return f.bucket }

func (f *fakeS3Client) UploadFile(_ context.Context, key, localPath, contentType string) error {
	if f.err != nil {
		return f.err
	}
	f.uploads = append(f.uploads, upload{key: key, path: localPath, contentType: contentType})
	return nil
}

func (f *fakeS3Client) DownloadFile(_ context.Context, key, localPath string) error {
	if f.err != nil {
		return f.err
	}
	if f.downloads == nil {
		f.downloads = map[string]string{}
	}
	f.downloads[key] = localPath
	return nil
}

func TestS3ServiceUpload(t *testing.T) {
	client := &fakeS3Client{bucket: "b"}
	svc := NewS3Service(client, zap.NewNop().Sugar())

	if err := svc.Upload(context.Background(), "/tmp/x/greeting.mp3", "BETA/audio_inputs/greeting.mp3"); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if len(client.uploads) != 1 {
		t.Fatalf("uploads = %d, want 1", len(client.uploads))
	}
	got := client.uploads[0]
	if got.key != "BETA/audio_inputs/greeting.mp3" || got.path != "/tmp/x/greeting.mp3" {
		t.Fatalf("upload = %+v", got)
	}
	if got.contentType != "audio/mpeg" {
		t.Fatalf("content type = %q", got.contentType)
	}
}

func TestS3ServiceUploadRequiresKey(t *testing.T) {
	svc := NewS3Service(&fakeS3Client{bucket: "b"}, zap.NewNop().Sugar())
	if err := svc.Upload(context.Background(), "a.txt", ""); err == nil {
		t.Fatal("expected error for empty key")
	}
}

func TestS3ServiceWrapsClientErrors(t *testing.T) {
	boom := errors.New("access denied")
	svc := NewS3Service(&fakeS3Client{bucket: "b", err: boom}, zap.NewNop().Sugar())

	err := svc.Download(context.Background(), "BETA/transcripts/job.json", "/tmp/t.json")
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want wrapped %v", err, boom)
	}
	if !strings.Contains(err.Error(), "s3://b/BETA/transcripts/job.json") {
		t.Fatalf("error %q should name the object", err)
	}
}

func TestS3ServiceURI(t *testing.T) {
	svc := NewS3Service(&fakeS3Client{bucket: "media"}, zap.NewNop().Sugar())
	if got := svc.URI("BETA/audio_inputs/a.mp3"); got != "s3://media/BETA/audio_inputs/a.mp3" {
		t.Fatalf("URI = %q", got)
	}
}

func TestContentType(t *testing.T) {
	tests := map[string]string{
		"a.mp3":  "audio/mpeg",
		"a.txt":  "text/plain; charset=utf-8",
		"a.json": "application/json",
		"a.zzz9": "application/octet-stream",
	}
	for path, want := range tests {
		if got := ContentType(path); got != want {
			t.Fatalf("ContentType(%q) = %q, want %q", path, got, want)
		}
	}
}
