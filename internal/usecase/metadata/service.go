package metadata

import (
	"context"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/marcos-nsantos/image-gateway/internal/adapter/storage"
	"github.com/marcos-nsantos/image-gateway/internal/domain/entity"
)

type Service struct {
	store     storage.ObjectStore
	processor storage.ImageProcessor
}

func NewService(store storage.ObjectStore, processor storage.ImageProcessor) *Service {
	return &Service{
		store:     store,
		processor: processor,
	}
}

func (s *Service) Extract(ctx context.Context, key string) (*entity.ImageMetadata, error) {
	obj, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	info, err := s.processor.Inspect(obj.Data)
	if err != nil {
		return nil, err
	}

	size := obj.Size
	if size <= 0 {
		size = int64(len(obj.Data))
	}

	mimeType := obj.ContentType
	if mimeType == "" {
		mimeType = sniffMimeType(obj.Data, info.Format)
	}

	return &entity.ImageMetadata{
		Key:         key,
		Bucket:      s.store.Bucket(),
		Width:       info.Width,
		Height:      info.Height,
		Format:      info.Format,
		SizeBytes:   size,
		MimeType:    mimeType,
		Orientation: info.Orientation,
		HasAlpha:    info.HasAlpha,
		ColorSpace:  info.ColorSpace,
		HasExif:     info.HasExif,
		Exif:        info.Exif,
	}, nil
}

// sniffMimeType detects the MIME type from the leading bytes and falls back to
// the decoder's format name when the signature is not a known image type.
func sniffMimeType(data []byte, format string) string {
	if detected := mimetype.Detect(data); strings.HasPrefix(detected.String(), "image/") {
		return detected.String()
	}
	if format == "" {
		return ""
	}
	return "image/" + format
}
