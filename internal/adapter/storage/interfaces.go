package storage

import (
	"context"
	"image"
	"io"
	"time"

	"github.com/marcos-nsantos/image-gateway/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

type ObjectStore interface {
	// Get returns domain.ErrObjectNotFound when the key does not exist.
	Get(ctx context.Context, key string) (*entity.Object, error)
	Put(ctx context.Context, key string, reader io.Reader, contentType string, size int64) error
	List(ctx context.Context, limit int32) ([]entity.ObjectInfo, error)
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
	URL(key string) string
	Bucket() string
}

type ImageProcessor interface {
	Decode(data []byte) (image.Image, string, error)
	Resize(img image.Image, width, height int) image.Image
	Encode(w io.Writer, img image.Image, format entity.ImageFormat, quality int) error
	Inspect(data []byte) (*entity.ImageInfo, error)
}
