package public

import (
	handlershared "github.com/shopfront/internal/http/handlers/shared"
	"github.com/shopfront/internal/http/response"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func respondErrorWithData(c *gin.Context, code int, key string, data interface{}, err error) {
	handlershared.RespondErrorWithData(c, code, key, data, err)
}

func getSessionID(c *gin.Context) (string, bool) {
	return handlershared.GetSessionID(c)
}

func getProductIDParam(c *gin.Context, name string) (uint, bool) {
	return handlershared.ParseUintParam(c, name, "error.product_id_invalid")
}

func traceID(c *gin.Context) string {
	if value, ok := c.Get(response.RequestIDKey); ok {
		if id, ok := value.(string); ok {
			return id
		}
	}
	return ""
}
