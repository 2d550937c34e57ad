package response

import (
	"encoding/json"
	"time"

	"github.com/marcos-nsantos/image-gateway/internal/domain/entity"
)

type MetadataResponse struct {
	Key         string          `json:"key"`
	Bucket      string          `json:"bucket"`
	Width       int             `json:"width"`
	Height      int             `json:"height"`
	Format      string          `json:"format"`
	SizeBytes   int64           `json:"sizeBytes"`
	MimeType    string          `json:"mimeType"`
	Orientation *int            `json:"orientation"`
	HasAlpha    bool            `json:"hasAlpha"`
	ColorSpace  string          `json:"colorSpace"`
	HasExif     bool            `json:"hasExif"`
	Exif        json.RawMessage `json:"exif"`
}

func MetadataFromEntity(m *entity.ImageMetadata) MetadataResponse {
	return MetadataResponse{
		Key:         m.Key,
		Bucket:      m.Bucket,
		Width:       m.Width,
		Height:      m.Height,
		Format:      m.Format,
		SizeBytes:   m.SizeBytes,
		MimeType:    m.MimeType,
		Orientation: m.Orientation,
		HasAlpha:    m.HasAlpha,
		ColorSpace:  m.ColorSpace,
		HasExif:     m.HasExif,
		Exif:        m.Exif,
	}
}

type ListItemResponse struct {
	Key          string     `json:"key"`
	Size         int64      `json:"size"`
	LastModified *time.Time `json:"lastModified"`
}

type ListResponse struct {
	Items []ListItemResponse `json:"items"`
}

func ListFromEntities(objects []entity.ListedObject) ListResponse {
	items := make([]ListItemResponse, len(objects))
	for i, o := range objects {
		items[i] = ListItemResponse{
			Key:          o.Key,
			Size:         o.Size,
			LastModified: o.LastModified,
		}
	}
	return ListResponse{Items: items}
}
