package request

import (
	"strconv"

	"github.com/marcos-nsantos/image-gateway/internal/domain/entity"
)

// Query values are bound as strings so that a malformed number is reported by
// the validator together with every other violation instead of failing binding.
type ImageTransformRequest struct {
	Key     string  `uri:"key" form:"-" validate:"required"`
	Width   *string `form:"w" validate:"omitempty,intrange=1 4000"`
	Height  *string `form:"h" validate:"omitempty,intrange=1 4000"`
	Format  *string `form:"fmt" validate:"omitempty,oneof=jpg jpeg png webp avif"`
	Quality *string `form:"q" validate:"omitempty,intrange=1 100"`
}

// ToOptions normalizes an already validated request.
func (r ImageTransformRequest) ToOptions() entity.TransformOptions {
	opts := entity.TransformOptions{
		Key:     r.Key,
		Width:   atoiOr(r.Width, 0),
		Height:  atoiOr(r.Height, 0),
		Quality: atoiOr(r.Quality, entity.DefaultQuality),
	}

	if r.Format != nil {
		format := *r.Format
		if format == "jpg" {
			format = string(entity.FormatJPEG)
		}
		opts.Format = entity.ImageFormat(format)
	}

	return opts
}

type MetadataRequest struct {
	Key string `uri:"key" validate:"required"`
}

func atoiOr(s *string, def int) int {
	if s == nil {
		return def
	}
	n, err := strconv.Atoi(*s)
	if err != nil {
		return def
	}
	return n
}
