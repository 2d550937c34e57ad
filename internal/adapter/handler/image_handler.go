package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/image-gateway/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/image-gateway/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/image-gateway/internal/domain"
	"github.com/marcos-nsantos/image-gateway/internal/pkg/apperror"
	"github.com/marcos-nsantos/image-gateway/internal/pkg/httputil"
	"github.com/marcos-nsantos/image-gateway/internal/pkg/validation"
)

type ImageHandler struct {
	imageSvc    ImageService
	metadataSvc MetadataService
	validator   *validation.Validator
}

func NewImageHandler(imageSvc ImageService, metadataSvc MetadataService, validator *validation.Validator) *ImageHandler {
	return &ImageHandler{
		imageSvc:    imageSvc,
		metadataSvc: metadataSvc,
		validator:   validator,
	}
}

func (h *ImageHandler) Get(c *gin.Context) {
	var req request.ImageTransformRequest
	if err := c.ShouldBindUri(&req); err != nil {
		httputil.ValidationError(c, "invalid path", []string{err.Error()})
		return
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, "invalid query parameters", []string{err.Error()})
		return
	}

	if details := h.validator.Struct(req); len(details) > 0 {
		httputil.ValidationError(c, "invalid query parameters", details)
		return
	}

	rendition, err := h.imageSvc.Transform(c.Request.Context(), req.ToOptions())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrObjectNotFound), errors.Is(err, domain.ErrUnprocessableImage):
			_ = c.Error(err)
			httputil.HandleError(c, apperror.NotFound("image not found or processing failed"))
		default:
			httputil.HandleError(c, apperror.Internal("failed to process image", err))
		}
		return
	}

	c.Data(http.StatusOK, rendition.ContentType, rendition.Data)
}

func (h *ImageHandler) Metadata(c *gin.Context) {
	var req request.MetadataRequest
	if err := c.ShouldBindUri(&req); err != nil {
		httputil.ValidationError(c, "invalid path", []string{err.Error()})
		return
	}

	if details := h.validator.Struct(req); len(details) > 0 {
		httputil.ValidationError(c, "invalid path", details)
		return
	}

	meta, err := h.metadataSvc.Extract(c.Request.Context(), req.Key)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrObjectNotFound), errors.Is(err, domain.ErrUnprocessableImage):
			_ = c.Error(err)
			httputil.HandleError(c, apperror.NotFound("image not found or metadata extraction failed"))
		default:
			httputil.HandleError(c, apperror.Internal("failed to extract metadata", err))
		}
		return
	}

	httputil.OK(c, response.MetadataFromEntity(meta))
}
