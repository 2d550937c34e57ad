package transform

import (
	"bytes"
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"

	"github.com/marcos-nsantos/image-gateway/internal/adapter/storage"
	"github.com/marcos-nsantos/image-gateway/internal/domain/entity"
)

type Service struct {
	store     storage.ObjectStore
	processor storage.ImageProcessor
	slots     *semaphore.Weighted
}

// NewService bounds the number of decode/encode runs in flight to concurrency.
func NewService(store storage.ObjectStore, processor storage.ImageProcessor, concurrency int64) *Service {
	return &Service{
		store:     store,
		processor: processor,
		slots:     semaphore.NewWeighted(concurrency),
	}
}

func (s *Service) Transform(ctx context.Context, opts entity.TransformOptions) (*entity.Rendition, error) {
	obj, err := s.store.Get(ctx, opts.Key)
	if err != nil {
		return nil, err
	}

	if err := s.slots.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("waiting for transform slot: %w", err)
	}
	defer s.slots.Release(1)

	img, sourceFormat, err := s.processor.Decode(obj.Data)
	if err != nil {
		return nil, err
	}

	format := opts.Format
	if format == "" {
		format = entity.FormatJPEG
	}

	if !opts.HasResize() && opts.Format == "" && sourceFormat == string(entity.FormatJPEG) {
		return &entity.Rendition{Data: obj.Data, ContentType: format.MimeType()}, nil
	}

	if opts.HasResize() {
		img = s.processor.Resize(img, opts.Width, opts.Height)
	}

	var buf bytes.Buffer
	if err := s.processor.Encode(&buf, img, format, opts.Quality); err != nil {
		return nil, fmt.Errorf("encoding rendition: %w", err)
	}

	return &entity.Rendition{Data: buf.Bytes(), ContentType: format.MimeType()}, nil
}
