package public

import "github.com/shopfront/internal/provider"

// Handler 店面接口处理器入口
// 说明：所有接口都以匿名会话为单位，会话由中间件解析或签发。
type Handler struct {
	*provider.Container
}

// New 创建店面处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
