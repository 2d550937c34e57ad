package entity

import "encoding/json"

type ImageFormat string

const (
	FormatJPEG ImageFormat = "jpeg"
	FormatPNG  ImageFormat = "png"
	FormatWEBP ImageFormat = "webp"
	FormatAVIF ImageFormat = "avif"
)

const DefaultQuality = 80

func (f ImageFormat) MimeType() string {
	return "image/" + string(f)
}

// TransformOptions holds normalized rendition parameters. A zero Width or Height
// leaves that axis unconstrained and an empty Format means no explicit format.
type TransformOptions struct {
	Key     string
	Width   int
	Height  int
	Format  ImageFormat
	Quality int
}

func (o TransformOptions) HasResize() bool {
	return o.Width > 0 || o.Height > 0
}

type Rendition struct {
	Data        []byte
	ContentType string
}

// ImageInfo is what the image processor can tell about encoded bytes.
type ImageInfo struct {
	Width       int
	Height      int
	Format      string
	Orientation *int
	HasAlpha    bool
	ColorSpace  string
	HasExif     bool
	Exif        json.RawMessage
}

type ImageMetadata struct {
	Key         string
	Bucket      string
	Width       int
	Height      int
	Format      string
	SizeBytes   int64
	MimeType    string
	Orientation *int
	HasAlpha    bool
	ColorSpace  string
	HasExif     bool
	Exif        json.RawMessage
}
