package upload

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/marcos-nsantos/image-gateway/internal/adapter/storage"
	"github.com/marcos-nsantos/image-gateway/internal/domain"
)

type Service struct {
	storage      storage.ObjectStore
	maxSize      int64
	allowedTypes map[string]struct{}
	now          func() time.Time
}

func NewService(objectStore storage.ObjectStore, maxSize int64, allowedTypes []string) *Service {
	allowed := make(map[string]struct{}, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[strings.ToLower(strings.TrimSpace(t))] = struct{}{}
	}

	return &Service{
		storage:      objectStore,
		maxSize:      maxSize,
		allowedTypes: allowed,
		now:          time.Now,
	}
}

type UploadInput struct {
	File        io.Reader
	Filename    string
	ContentType string
	Size        int64
}

type UploadResult struct {
	Key string
	URL string
}

func (s *Service) Upload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	if input.Size > s.maxSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d", domain.ErrPayloadTooLarge, input.Size, s.maxSize)
	}

	if _, ok := s.allowedTypes[strings.ToLower(input.ContentType)]; !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedMediaType, input.ContentType)
	}

	key := s.objectKey(input.Filename)

	if err := s.storage.Put(ctx, key, input.File, input.ContentType, input.Size); err != nil {
		return nil, fmt.Errorf("uploading to storage: %w", err)
	}

	return &UploadResult{
		Key: key,
		URL: s.storage.URL(key),
	}, nil
}

// objectKey prefixes the base filename with a nanosecond timestamp.
func (s *Service) objectKey(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	if name == "." || name == "/" {
		name = "upload"
	}
	return fmt.Sprintf("%d-%s", s.now().UnixNano(), name)
}
