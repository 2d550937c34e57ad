package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/image-gateway/internal/pkg/apperror"
	"github.com/marcos-nsantos/image-gateway/internal/pkg/httputil"
)

const APIKeyHeader = "X-API-Key"

type APIKeyMiddleware struct {
	secret []byte
}

func NewAPIKeyMiddleware(secret string) *APIKeyMiddleware {
	return &APIKeyMiddleware{secret: []byte(secret)}
}

func (m *APIKeyMiddleware) RequireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			httputil.HandleError(c, apperror.Unauthorized("missing api key"))
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(key), m.secret) != 1 {
			httputil.HandleError(c, apperror.Forbidden("invalid api key"))
			c.Abort()
			return
		}

		c.Next()
	}
}
