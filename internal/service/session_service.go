package service

import (
	"strings"
	"time"

	"github.com/shopfront/internal/config"
	"github.com/shopfront/internal/constants"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims 会话令牌声明
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// SessionService 匿名会话令牌服务
type SessionService struct {
	cfg *config.SessionConfig
}

// NewSessionService 创建会话服务
func NewSessionService(cfg *config.SessionConfig) *SessionService {
	return &SessionService{cfg: cfg}
}

// Header 会话令牌所在请求头
func (s *SessionService) Header() string {
	if s.cfg == nil || strings.TrimSpace(s.cfg.Header) == "" {
		return constants.DefaultSessionHeader
	}
	return strings.TrimSpace(s.cfg.Header)
}

// Issue 签发新的会话令牌
func (s *SessionService) Issue() (string, *SessionClaims, error) {
	now := time.Now()
	claims := &SessionClaims{
		SessionID: uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expireDuration())),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret())
	if err != nil {
		return "", nil, err
	}
	return tokenString, claims, nil
}

// Parse 解析会话令牌
func (s *SessionService) Parse(tokenString string) (*SessionClaims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, ErrSessionInvalid
	}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &SessionClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret(), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrSessionInvalid
	}
	if _, err := uuid.Parse(claims.SessionID); err != nil {
		return nil, ErrSessionInvalid
	}
	return claims, nil
}

func (s *SessionService) secret() []byte {
	if s.cfg == nil {
		return nil
	}
	return []byte(s.cfg.Secret)
}

func (s *SessionService) expireDuration() time.Duration {
	hours := constants.DefaultSessionExpireHours
	if s.cfg != nil && s.cfg.ExpireHours > 0 {
		hours = s.cfg.ExpireHours
	}
	return time.Duration(hours) * time.Hour
}
