package router

import (
	"github.com/shopfront/internal/cache"
	"github.com/shopfront/internal/config"
	publichandlers "github.com/shopfront/internal/http/handlers/public"
	"github.com/shopfront/internal/logger"
	"github.com/shopfront/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisClient := cache.Client()
	// 先按 IP 限流，挡住不断换新令牌的请求，再按会话限流
	checkoutIPRule := RateLimitRule{
		Prefix:        cache.Key("rate", "checkout", "ip"),
		WindowSeconds: cfg.Security.CheckoutIPRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CheckoutIPRateLimit.MaxRequests,
		MessageKey:    "error.rate_limited",
	}
	checkoutRule := RateLimitRule{
		Prefix:        cache.Key("rate", "checkout"),
		WindowSeconds: cfg.Security.CheckoutRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CheckoutRateLimit.MaxRequests,
		MessageKey:    "error.rate_limited",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS, c.SessionService.Header()))

	apiV1 := r.Group("/api/v1")
	apiV1.Use(SessionMiddleware(c.SessionService))
	{
		// 商品目录
		apiV1.GET("/products", publicHandler.GetProducts)
		apiV1.GET("/products/featured", publicHandler.GetFeaturedProducts)
		apiV1.GET("/products/:id", publicHandler.GetProduct)
		apiV1.GET("/categories", publicHandler.GetCategories)

		// 购物车
		apiV1.GET("/cart", publicHandler.GetCart)
		apiV1.DELETE("/cart", publicHandler.ClearCart)
		apiV1.POST("/cart/items", publicHandler.AddCartItem)
		apiV1.PUT("/cart/items/:product_id", publicHandler.UpdateCartItem)
		apiV1.DELETE("/cart/items/:product_id", publicHandler.DeleteCartItem)

		// 结算
		apiV1.GET("/checkout", publicHandler.GetCheckout)
		apiV1.POST("/checkout",
			RateLimitMiddleware(redisClient, checkoutIPRule, KeyByIP),
			RateLimitMiddleware(redisClient, checkoutRule, KeyBySession),
			publicHandler.SubmitCheckout,
		)
		apiV1.DELETE("/checkout", publicHandler.ResetCheckout)

		// 订单
		apiV1.GET("/orders", publicHandler.ListOrders)
		apiV1.GET("/orders/:order_no", publicHandler.GetOrder)
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		redisState := "disabled"
		if enabled, err := cache.Ping(c.Request.Context()); enabled {
			redisState = "ok"
			if err != nil {
				logger.Warnw("health_redis_ping_failed", "error", err)
				redisState = "unavailable"
			}
		}
		c.JSON(200, gin.H{"status": "ok", "redis": redisState})
	})

	return r
}
