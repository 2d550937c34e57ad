package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/marcos-nsantos/image-gateway/internal/adapter/handler"
	"github.com/marcos-nsantos/image-gateway/internal/mocks"
	"github.com/marcos-nsantos/image-gateway/internal/pkg/validation"
	"github.com/marcos-nsantos/image-gateway/internal/usecase/sign"
)

func TestSignHandler_Sign(t *testing.T) {
	t.Run("defaults expiry to sixty seconds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		signSvc := mocks.NewMockSignService(ctrl)
		h := handler.NewSignHandler(signSvc, validation.New())

		router := setupRouter()
		router.GET("/sign/:key", h.Sign)

		signSvc.EXPECT().Sign(gomock.Any(), "photo.jpg", 60).Return(&sign.SignResult{
			Key:       "photo.jpg",
			URL:       "https://signed.example/photo.jpg",
			ExpiresIn: 60,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/sign/photo.jpg", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"key":"photo.jpg","url":"https://signed.example/photo.jpg","expiresIn":60}`, w.Body.String())
	})

	t.Run("echoes requested expiry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		signSvc := mocks.NewMockSignService(ctrl)
		h := handler.NewSignHandler(signSvc, validation.New())

		router := setupRouter()
		router.GET("/sign/:key", h.Sign)

		signSvc.EXPECT().Sign(gomock.Any(), "photo.jpg", 3600).Return(&sign.SignResult{
			Key:       "photo.jpg",
			URL:       "https://signed.example/photo.jpg",
			ExpiresIn: 3600,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/sign/photo.jpg?expiresIn=3600", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"expiresIn":3600`)
	})

	t.Run("rejects expiry out of range", func(t *testing.T) {
		for _, value := range []string{"0", "3601", "later"} {
			ctrl := gomock.NewController(t)

			signSvc := mocks.NewMockSignService(ctrl)
			h := handler.NewSignHandler(signSvc, validation.New())

			router := setupRouter()
			router.GET("/sign/:key", h.Sign)

			signSvc.EXPECT().Sign(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			req := httptest.NewRequest(http.MethodGet, "/sign/photo.jpg?expiresIn="+value, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code, "expiresIn=%s", value)

			resp := decodeError(t, w)
			assert.Equal(t, "VALIDATION_ERROR", resp.Code)
			assert.Equal(t, []string{"expiresIn must be an integer between 1 and 3600"}, resp.Details)

			ctrl.Finish()
		}
	})

	t.Run("returns internal error when signing fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		signSvc := mocks.NewMockSignService(ctrl)
		h := handler.NewSignHandler(signSvc, validation.New())

		router := setupRouter()
		router.GET("/sign/:key", h.Sign)

		signSvc.EXPECT().Sign(gomock.Any(), "photo.jpg", 60).Return(nil, errors.New("no credentials"))

		req := httptest.NewRequest(http.MethodGet, "/sign/photo.jpg", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "failed to generate signed url", decodeError(t, w).Error)
	})
}
