package sink

import (
	"context"
	"fmt"
	"strings"

	"bolt-manager/core/storage"

	"github.com/minio/minio-go/v7"
)

// Object publishes catalog files to an object storage bucket.
type Object struct {
	client storage.Client
	bucket string
	prefix string
}

// NewObject creates an object storage sink writing under the given bucket
// and key prefix.
func NewObject(client storage.Client, bucket, prefix string) *Object {
	return &Object{client: client, bucket: bucket, prefix: prefix}
}

// Write publishes content at the prefixed key.
func (s *Object) Write(ctx context.Context, path, content string, overwrite bool) (Outcome, error) {
	key := path
	if s.prefix != "" {
		key = strings.TrimSuffix(s.prefix, "/") + "/" + path
	}

	outcome := OutcomeCreated
	if _, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{}); err == nil {
		if !overwrite {
			return OutcomeSkipped, nil
		}
		outcome = OutcomeOverwritten
	}

	contentType := "text/plain; charset=utf-8"
	if strings.HasSuffix(path, ".html") {
		contentType = "text/html; charset=utf-8"
	}

	reader := strings.NewReader(content)
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, int64(len(content)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to publish %s: %w", key, err)
	}
	return outcome, nil
}
