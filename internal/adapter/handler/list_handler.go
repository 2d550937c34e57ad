package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/image-gateway/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/image-gateway/internal/pkg/apperror"
	"github.com/marcos-nsantos/image-gateway/internal/pkg/httputil"
)

type ListHandler struct {
	listSvc ListService
}

func NewListHandler(listSvc ListService) *ListHandler {
	return &ListHandler{listSvc: listSvc}
}

func (h *ListHandler) List(c *gin.Context) {
	objects, err := h.listSvc.List(c.Request.Context())
	if err != nil {
		httputil.HandleError(c, apperror.Internal("failed to list images", err))
		return
	}

	httputil.OK(c, response.ListFromEntities(objects))
}
