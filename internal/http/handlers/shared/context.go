package shared

import (
	"strconv"
	"strings"

	"github.com/shopfront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// SessionIDKey 会话ID在 gin 上下文中的键
const SessionIDKey = "session_id"

// SessionIssuedKey 本次请求新签发会话时为 true
const SessionIssuedKey = "session_issued"

// GetSessionID 从上下文读取会话ID并统一处理错误响应。
func GetSessionID(c *gin.Context) (string, bool) {
	value, exists := c.Get(SessionIDKey)
	if !exists {
		RespondError(c, response.CodeUnauthorized, "error.session_invalid", nil)
		return "", false
	}
	sessionID, ok := value.(string)
	if !ok || strings.TrimSpace(sessionID) == "" {
		RespondError(c, response.CodeUnauthorized, "error.session_invalid", nil)
		return "", false
	}
	return sessionID, true
}

// ParseUintParam 解析路径中的正整数参数，非法时返回 400。
func ParseUintParam(c *gin.Context, name, invalidKey string) (uint, bool) {
	raw := strings.TrimSpace(c.Param(name))
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		RespondError(c, response.CodeBadRequest, invalidKey, nil)
		return 0, false
	}
	return uint(value), true
}
