package listing

import (
	"context"
	"slices"

	"github.com/marcos-nsantos/image-gateway/internal/adapter/storage"
	"github.com/marcos-nsantos/image-gateway/internal/domain/entity"
)

const MaxItems = 200

type Service struct {
	store storage.ObjectStore
}

func NewService(store storage.ObjectStore) *Service {
	return &Service{store: store}
}

// List returns up to MaxItems objects, newest first. Entries without a key are
// skipped, a missing size reads as 0 and undated entries sort last.
func (s *Service) List(ctx context.Context) ([]entity.ListedObject, error) {
	objects, err := s.store.List(ctx, MaxItems)
	if err != nil {
		return nil, err
	}

	items := make([]entity.ListedObject, 0, len(objects))
	for _, o := range objects {
		if o.Key == "" {
			continue
		}

		var size int64
		if o.Size != nil {
			size = *o.Size
		}

		items = append(items, entity.ListedObject{
			Key:          o.Key,
			Size:         size,
			LastModified: o.LastModified,
		})
	}

	slices.SortStableFunc(items, func(a, b entity.ListedObject) int {
		switch {
		case a.LastModified == nil && b.LastModified == nil:
			return 0
		case a.LastModified == nil:
			return 1
		case b.LastModified == nil:
			return -1
		default:
			return b.LastModified.Compare(*a.LastModified)
		}
	})

	return items, nil
}
