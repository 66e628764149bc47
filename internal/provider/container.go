package provider

import (
	"context"
	"time"

	"github.com/shopfront/internal/cache"
	"github.com/shopfront/internal/cart"
	"github.com/shopfront/internal/catalog"
	"github.com/shopfront/internal/checkout"
	"github.com/shopfront/internal/config"
	"github.com/shopfront/internal/events"
	"github.com/shopfront/internal/logger"
	"github.com/shopfront/internal/queue"
	"github.com/shopfront/internal/repository"
	"github.com/shopfront/internal/service"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client
	Publisher   events.Publisher

	// Domain
	Catalog   *catalog.Catalog
	Carts     *cart.Registry
	Checkouts *checkout.Registry
	Processor *checkout.Processor

	// Repositories
	OrderRepo repository.OrderRepository

	// Services
	SessionService  *service.SessionService
	ProductService  *service.ProductService
	CartService     *service.CartService
	CheckoutService *service.CheckoutService
	OrderService    *service.OrderService
	EmailService    *service.EmailService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config, db *gorm.DB) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
		Publisher:   events.New(&cfg.Events),
	}

	// 1. 初始化领域对象
	c.initDomain()

	// 2. 初始化 Repositories
	c.initRepositories(db)

	// 3. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initDomain() {
	c.Catalog = catalog.Default()

	var snapshotter cart.Snapshotter
	if cache.Enabled() {
		snapshotter = cache.NewCartStateStore(0)
	}
	c.Carts = cart.NewRegistry(c.Catalog.FindByID, snapshotter)
	c.Checkouts = checkout.NewRegistry()
	c.Processor = checkout.NewProcessor(c.Config.Checkout.ProcessingDelay())
}

func (c *Container) initRepositories(db *gorm.DB) {
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initServices() {
	c.SessionService = service.NewSessionService(&c.Config.Session)
	c.ProductService = service.NewProductService(c.Catalog)
	c.CartService = service.NewCartService(c.Catalog, c.Carts)
	c.OrderService = service.NewOrderService(c.OrderRepo)
	c.EmailService = service.NewEmailService(nil)
	c.CheckoutService = service.NewCheckoutService(service.CheckoutServiceOptions{
		Carts:       c.Carts,
		Sessions:    c.Checkouts,
		Processor:   c.Processor,
		OrderRepo:   c.OrderRepo,
		QueueClient: c.QueueClient,
		Publisher:   c.Publisher,
		OrderPrefix: c.Config.Checkout.OrderPrefix,
	})
}

// Close 释放外部连接，等待处理中的订单确认结束
func (c *Container) Close(timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if c.CheckoutService != nil {
		if err := c.CheckoutService.Shutdown(ctx); err != nil {
			logger.Warnw("provider_checkout_shutdown_failed", "error", err)
		}
	}
	if c.Publisher != nil {
		if err := c.Publisher.Close(); err != nil {
			logger.Warnw("provider_publisher_close_failed", "error", err)
		}
	}
	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			logger.Warnw("provider_queue_client_close_failed", "error", err)
		}
	}
	if err := cache.Close(); err != nil {
		logger.Warnw("provider_redis_close_failed", "error", err)
	}
}
