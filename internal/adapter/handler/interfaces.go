package handler

import (
	"context"

	"github.com/marcos-nsantos/image-gateway/internal/domain/entity"
	"github.com/marcos-nsantos/image-gateway/internal/usecase/sign"
	"github.com/marcos-nsantos/image-gateway/internal/usecase/upload"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type ImageService interface {
	Transform(ctx context.Context, opts entity.TransformOptions) (*entity.Rendition, error)
}

type MetadataService interface {
	Extract(ctx context.Context, key string) (*entity.ImageMetadata, error)
}

type UploadService interface {
	Upload(ctx context.Context, input upload.UploadInput) (*upload.UploadResult, error)
}

type SignService interface {
	Sign(ctx context.Context, key string, expiresIn int) (*sign.SignResult, error)
}

type ListService interface {
	List(ctx context.Context) ([]entity.ListedObject, error)
}
