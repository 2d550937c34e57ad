package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/image-gateway/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/image-gateway/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/image-gateway/internal/pkg/apperror"
	"github.com/marcos-nsantos/image-gateway/internal/pkg/httputil"
	"github.com/marcos-nsantos/image-gateway/internal/pkg/validation"
)

type SignHandler struct {
	signSvc   SignService
	validator *validation.Validator
}

func NewSignHandler(signSvc SignService, validator *validation.Validator) *SignHandler {
	return &SignHandler{
		signSvc:   signSvc,
		validator: validator,
	}
}

func (h *SignHandler) Sign(c *gin.Context) {
	var req request.SignRequest
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

	result, err := h.signSvc.Sign(c.Request.Context(), req.Key, req.ExpiresInSeconds())
	if err != nil {
		httputil.HandleError(c, apperror.Internal("failed to generate signed url", err))
		return
	}

	httputil.OK(c, response.SignResultToResponse(result))
}
