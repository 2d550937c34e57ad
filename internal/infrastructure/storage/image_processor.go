package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gen2brain/avif"
	"github.com/rwcarlsen/goexif/exif"

	"github.com/marcos-nsantos/image-gateway/internal/domain"
	"github.com/marcos-nsantos/image-gateway/internal/domain/entity"
)

const avifSpeed = 8

type ImageProcessorImpl struct {
	filter imaging.ResampleFilter
}

func NewImageProcessor() *ImageProcessorImpl {
	return &ImageProcessorImpl{
		filter: imaging.Lanczos,
	}
}

func (p *ImageProcessorImpl) Decode(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrUnprocessableImage, err)
	}
	return img, format, nil
}

// Resize fits img inside width x height keeping its aspect ratio. A non-positive
// bound leaves that axis unconstrained. Images already inside the box are not enlarged.
func (p *ImageProcessorImpl) Resize(img image.Image, width, height int) image.Image {
	bounds := img.Bounds()
	if width <= 0 {
		width = bounds.Dx()
	}
	if height <= 0 {
		height = bounds.Dy()
	}
	return imaging.Fit(img, width, height, p.filter)
}

func (p *ImageProcessorImpl) Encode(w io.Writer, img image.Image, format entity.ImageFormat, quality int) error {
	var err error

	switch format {
	case entity.FormatJPEG:
		err = imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(quality))
	case entity.FormatPNG:
		err = imaging.Encode(w, img, imaging.PNG)
	case entity.FormatWEBP:
		err = webp.Encode(w, img, &webp.Options{Quality: float32(quality)})
	case entity.FormatAVIF:
		err = avif.Encode(w, img, avif.Options{
			Quality:      quality,
			QualityAlpha: quality,
			Speed:        avifSpeed,
		})
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}

	if err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}
	return nil
}

func (p *ImageProcessorImpl) Inspect(data []byte) (*entity.ImageInfo, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnprocessableImage, err)
	}

	hasAlpha, colorSpace := colorModelTraits(cfg.ColorModel)

	info := &entity.ImageInfo{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Format:     format,
		HasAlpha:   hasAlpha,
		ColorSpace: colorSpace,
	}

	x, err := exif.Decode(bytes.NewReader(data))
	if x == nil || (err != nil && exif.IsCriticalError(err)) {
		return info, nil
	}

	info.HasExif = true
	if raw, err := x.MarshalJSON(); err == nil {
		info.Exif = raw
	}
	if tag, err := x.Get(exif.Orientation); err == nil {
		if v, err := tag.Int(0); err == nil {
			info.Orientation = &v
		}
	}

	return info, nil
}

func colorModelTraits(m color.Model) (bool, string) {
	// Palettes are slices and cannot be compared with ==.
	if palette, ok := m.(color.Palette); ok {
		for _, c := range palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return true, "srgb"
			}
		}
		return false, "srgb"
	}

	switch m {
	case color.GrayModel, color.Gray16Model:
		return false, "b-w"
	case color.CMYKModel:
		return false, "cmyk"
	// Decoders report opaque truecolor (e.g. PNG color type 2) as RGBA and
	// alpha-carrying data as non-premultiplied.
	case color.NRGBAModel, color.NRGBA64Model, color.AlphaModel, color.Alpha16Model, color.NYCbCrAModel:
		return true, "srgb"
	default:
		return false, "srgb"
	}
}
