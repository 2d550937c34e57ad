package sign

import (
	"context"
	"time"

	"github.com/marcos-nsantos/image-gateway/internal/adapter/storage"
)

type Service struct {
	store storage.ObjectStore
}

func NewService(store storage.ObjectStore) *Service {
	return &Service{store: store}
}

type SignResult struct {
	Key       string
	URL       string
	ExpiresIn int
}

// Sign presigns a read of key valid for expiresIn seconds. Nothing is recorded;
// the store enforces expiry.
func (s *Service) Sign(ctx context.Context, key string, expiresIn int) (*SignResult, error) {
	url, err := s.store.PresignGet(ctx, key, time.Duration(expiresIn)*time.Second)
	if err != nil {
		return nil, err
	}

	return &SignResult{
		Key:       key,
		URL:       url,
		ExpiresIn: expiresIn,
	}, nil
}
