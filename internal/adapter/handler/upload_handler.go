package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/image-gateway/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/image-gateway/internal/domain"
	"github.com/marcos-nsantos/image-gateway/internal/pkg/apperror"
	"github.com/marcos-nsantos/image-gateway/internal/pkg/httputil"
	"github.com/marcos-nsantos/image-gateway/internal/usecase/upload"
)

// multipartOverhead leaves room for boundaries and part headers on top of the
// file size limit.
const multipartOverhead = 1 << 20

type UploadHandler struct {
	uploadSvc UploadService
	maxSize   int64
}

func NewUploadHandler(uploadSvc UploadService, maxSize int64) *UploadHandler {
	return &UploadHandler{
		uploadSvc: uploadSvc,
		maxSize:   maxSize,
	}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxSize+multipartOverhead)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			httputil.HandleError(c, apperror.PayloadTooLarge("file exceeds maximum upload size"))
			return
		}
		httputil.HandleError(c, apperror.BadRequest("INVALID_FILE", "file is required"))
		return
	}
	defer file.Close()

	result, err := h.uploadSvc.Upload(c.Request.Context(), upload.UploadInput{
		File:        file,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPayloadTooLarge):
			httputil.HandleError(c, apperror.PayloadTooLarge("file exceeds maximum upload size"))
		case errors.Is(err, domain.ErrUnsupportedMediaType):
			httputil.HandleError(c, apperror.UnsupportedMediaType("file type is not allowed"))
		default:
			httputil.HandleError(c, apperror.Internal("failed to upload file", err))
		}
		return
	}

	httputil.Created(c, response.UploadResultToResponse(result))
}
