package listing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/marcos-nsantos/image-gateway/internal/domain/entity"
	"github.com/marcos-nsantos/image-gateway/internal/mocks"
	"github.com/marcos-nsantos/image-gateway/internal/usecase/listing"
)

func sizePtr(n int64) *int64 {
	return &n
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestService_List(t *testing.T) {
	t.Run("orders newest first with undated entries last", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockObjectStore(ctrl)
		svc := listing.NewService(store)

		ctx := context.Background()
		t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		t2 := t1.Add(time.Hour)
		t3 := t2.Add(time.Hour)

		store.EXPECT().List(ctx, int32(listing.MaxItems)).Return([]entity.ObjectInfo{
			{Key: "b", Size: sizePtr(20), LastModified: timePtr(t2)},
			{Key: "undated", Size: sizePtr(5)},
			{Key: "a", Size: sizePtr(10), LastModified: timePtr(t1)},
			{Key: "c", Size: sizePtr(30), LastModified: timePtr(t3)},
		}, nil)

		items, err := svc.List(ctx)

		require.NoError(t, err)
		require.Len(t, items, 4)
		assert.Equal(t, "c", items[0].Key)
		assert.Equal(t, "b", items[1].Key)
		assert.Equal(t, "a", items[2].Key)
		assert.Equal(t, "undated", items[3].Key)
		assert.Nil(t, items[3].LastModified)
		assert.Equal(t, int64(30), items[0].Size)
	})

	t.Run("skips keyless entries and zeroes missing sizes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockObjectStore(ctrl)
		svc := listing.NewService(store)

		ctx := context.Background()
		modified := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

		store.EXPECT().List(ctx, int32(listing.MaxItems)).Return([]entity.ObjectInfo{
			{Key: "", Size: sizePtr(99), LastModified: timePtr(modified)},
			{Key: "sizeless.jpg", LastModified: timePtr(modified)},
		}, nil)

		items, err := svc.List(ctx)

		require.NoError(t, err)
		assert.Equal(t, []entity.ListedObject{
			{Key: "sizeless.jpg", Size: 0, LastModified: timePtr(modified)},
		}, items)
	})

	t.Run("returns empty list for empty bucket", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockObjectStore(ctrl)
		svc := listing.NewService(store)

		store.EXPECT().List(gomock.Any(), int32(listing.MaxItems)).Return(nil, nil)

		items, err := svc.List(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("returns store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockObjectStore(ctrl)
		svc := listing.NewService(store)

		listErr := errors.New("access denied")
		store.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, listErr)

		items, err := svc.List(context.Background())

		assert.Nil(t, items)
		assert.ErrorIs(t, err, listErr)
	})
}
