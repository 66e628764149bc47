package router

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopfront/internal/config"
	handlershared "github.com/shopfront/internal/http/handlers/shared"
	"github.com/shopfront/internal/http/response"
	"github.com/shopfront/internal/i18n"
	"github.com/shopfront/internal/logger"
	"github.com/shopfront/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// CORSMiddleware 跨域中间件
func CORSMiddleware(cfg config.CORSConfig, exposeHeaders ...string) gin.HandlerFunc {
	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	allowedMethods := cfg.AllowedMethods
	if len(allowedMethods) == 0 {
		allowedMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}
	allowedHeaders := cfg.AllowedHeaders
	if len(allowedHeaders) == 0 {
		allowedHeaders = []string{
			"Content-Type",
			"Content-Length",
			"Accept-Encoding",
			"Authorization",
			"Cache-Control",
			"X-Requested-With",
			"X-CSRF-Token",
		}
	}
	methodsHeader := strings.Join(allowedMethods, ", ")
	headersHeader := strings.Join(allowedHeaders, ", ")
	exposeHeader := strings.Join(append([]string{requestIDHeader}, exposeHeaders...), ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowedOrigin := resolveAllowedOrigin(origin, allowedOrigins, cfg.AllowCredentials)
		if allowedOrigin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			if allowedOrigin != "*" {
				c.Writer.Header().Add("Vary", "Origin")
			}
		}
		if cfg.AllowCredentials {
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", headersHeader)
		c.Writer.Header().Set("Access-Control-Allow-Methods", methodsHeader)
		c.Writer.Header().Set("Access-Control-Expose-Headers", exposeHeader)
		if cfg.MaxAge > 0 {
			c.Writer.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func resolveAllowedOrigin(origin string, allowedOrigins []string, allowCredentials bool) string {
	if len(allowedOrigins) == 0 {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if allowed == "*" {
			if allowCredentials && origin != "" {
				return origin
			}
			return "*"
		}
	}
	if origin == "" {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if strings.EqualFold(allowed, origin) {
			return origin
		}
	}
	return ""
}

// RequestIDMiddleware 请求 ID 中间件
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(response.RequestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// LoggerMiddleware 结构化请求日志中间件
func LoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	sugar := logger.Sugar()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log := sugar.With(
			"request_id", getRequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
		if len(c.Errors) > 0 {
			log.Errorw("request", "errors", c.Errors.String())
			return
		}
		log.Infow("request")
	}
}

func getRequestID(c *gin.Context) string {
	value, ok := c.Get(response.RequestIDKey)
	if !ok {
		return ""
	}
	if requestID, ok := value.(string); ok {
		return requestID
	}
	return ""
}

// SessionMiddleware 匿名会话中间件
// 请求头中的令牌有效时沿用会话，缺失或失效时签发新会话，令牌始终回写到响应头
func SessionMiddleware(sessionService *service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessionService == nil {
			msg := i18n.T(i18n.ResolveLocale(c), "error.session_invalid")
			response.Unauthorized(c, msg)
			c.Abort()
			return
		}
		header := sessionService.Header()
		token := strings.TrimSpace(c.GetHeader(header))

		var sessionID string
		if token != "" {
			claims, err := sessionService.Parse(token)
			if err == nil {
				sessionID = claims.SessionID
			} else {
				logger.Debugw("session_token_rejected", "request_id", getRequestID(c), "error", err)
			}
		}
		if sessionID == "" {
			issued, claims, err := sessionService.Issue()
			if err != nil {
				logger.Errorw("session_issue_failed", "request_id", getRequestID(c), "error", err)
				msg := i18n.T(i18n.ResolveLocale(c), "error.internal_error")
				response.Error(c, response.CodeInternal, msg)
				c.Abort()
				return
			}
			token = issued
			sessionID = claims.SessionID
			c.Set(handlershared.SessionIssuedKey, true)
		}

		c.Set(handlershared.SessionIDKey, sessionID)
		c.Writer.Header().Set(header, token)
		c.Next()
	}
}

// KeyBySession 使用 IP 加会话ID作为限流 key。
// 本次请求新签发的会话不计入会话维度，省略令牌只能落到 IP 维度
func KeyBySession(c *gin.Context) string {
	ip := c.ClientIP()
	if c.GetBool(handlershared.SessionIssuedKey) {
		return "ip:" + ip
	}
	if value, ok := c.Get(handlershared.SessionIDKey); ok {
		if sessionID, ok := value.(string); ok && sessionID != "" {
			return "sess:" + sessionID + "|" + ip
		}
	}
	return "ip:" + ip
}
