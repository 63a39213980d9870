// Package uploads handles thumbnail uploads to Cloud Storage. The upload
// provider is a black box to the rest of the system: bytes in, publicly
// fetchable URL out.
package uploads

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	"github.com/grok-project-10/mvp-dashboard-backend/internal/apperr"
)

// MaxThumbnailSize caps uploads at 5 MiB.
const MaxThumbnailSize = 5 << 20

var allowedContentTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Service writes thumbnail objects into the configured bucket.
type Service struct {
	bucket     *storage.BucketHandle
	bucketName string
}

func NewService(bucket *storage.BucketHandle, bucketName string) *Service {
	return &Service{bucket: bucket, bucketName: bucketName}
}

// UploadThumbnail stores the file under thumbnails/ and returns its public
// URL. The object name embeds a timestamp and a random component so
// repeated uploads of the same filename never collide.
func (s *Service) UploadThumbnail(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	ext, ok := allowedContentTypes[contentType]
	if !ok {
		return "", apperr.New(apperr.CodeInvalid, fmt.Sprintf("unsupported content type %q", contentType))
	}
	if s.bucket == nil {
		return "", apperr.New(apperr.CodeUpload, "storage bucket not configured")
	}
	if e := strings.ToLower(filepath.Ext(filename)); e != "" {
		ext = e
	}

	object := fmt.Sprintf("thumbnails/%d_%s%s", time.Now().Unix(), uuid.NewString()[:8], ext)

	w := s.bucket.Object(object).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, io.LimitReader(r, MaxThumbnailSize)); err != nil {
		_ = w.Close()
		return "", apperr.Wrap(err, apperr.CodeUpload, "write thumbnail")
	}
	if err := w.Close(); err != nil {
		return "", apperr.Wrap(err, apperr.CodeUpload, "finalize thumbnail")
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, object), nil
}
