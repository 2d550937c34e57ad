package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/marcos-nsantos/image-gateway/internal/adapter/handler"
	"github.com/marcos-nsantos/image-gateway/internal/domain/entity"
	"github.com/marcos-nsantos/image-gateway/internal/mocks"
)

func TestListHandler_List(t *testing.T) {
	t.Run("returns items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		listSvc := mocks.NewMockListService(ctrl)
		h := handler.NewListHandler(listSvc)

		router := setupRouter()
		router.GET("/list", h.List)

		modified := time.Date(2024, 3, 10, 8, 30, 0, 0, time.UTC)
		listSvc.EXPECT().List(gomock.Any()).Return([]entity.ListedObject{
			{Key: "new.jpg", Size: 2048, LastModified: &modified},
			{Key: "undated.png", Size: 0},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/list", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"items":[
			{"key":"new.jpg","size":2048,"lastModified":"2024-03-10T08:30:00Z"},
			{"key":"undated.png","size":0,"lastModified":null}
		]}`, w.Body.String())
	})

	t.Run("returns empty items array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		listSvc := mocks.NewMockListService(ctrl)
		h := handler.NewListHandler(listSvc)

		router := setupRouter()
		router.GET("/list", h.List)

		listSvc.EXPECT().List(gomock.Any()).Return([]entity.ListedObject{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/list", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"items":[]}`, w.Body.String())
	})

	t.Run("returns internal error on store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		listSvc := mocks.NewMockListService(ctrl)
		h := handler.NewListHandler(listSvc)

		router := setupRouter()
		router.GET("/list", h.List)

		listSvc.EXPECT().List(gomock.Any()).Return(nil, errors.New("access denied"))

		req := httptest.NewRequest(http.MethodGet, "/list", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "failed to list images", decodeError(t, w).Error)
	})
}
