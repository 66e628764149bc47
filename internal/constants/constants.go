package constants

// 商品分类常量
const (
	CategoryAll         = "all"
	CategoryElectronics = "Electronics"
	CategoryFashion     = "Fashion"
	CategoryHome        = "Home"
)

// 展示数量常量
const (
	FeaturedProductLimit = 4
	RelatedProductLimit  = 4
)

// 订单金额常量（契约值，不可配置）
const (
	FreeShippingThreshold = "50"
	StandardShippingCost  = "10"
	SalesTaxRate          = "0.07"
)

// 支付方式常量
const (
	PaymentMethodCreditCard = "credit_card"
	PaymentMethodPaypal     = "paypal"
)

// 结账状态常量
const (
	CheckoutStateEditing    = "editing"
	CheckoutStateSubmitting = "submitting"
	CheckoutStateConfirmed  = "confirmed"
)

// 结账默认值
const (
	DefaultCountry             = "United States"
	DefaultOrderNoPrefix       = "ORD-"
	DefaultProcessingDelayMS   = 1500
	OrderNoRandomMin           = 100000
	OrderNoRandomSpan          = 900000
	DefaultSessionHeader       = "X-Session-Token"
	DefaultSessionExpireHours  = 24
	DefaultOrderConfirmedTopic = "shopfront.order.confirmed"
)

// 分页
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// 购物车与会话回收
const (
	MaxCartLineQuantity        = 999
	DefaultSessionSweepMinutes = 10
)

// 队列常量
const (
	QueueDefault  = "default"
	QueueCritical = "critical"
)

// 异步任务类型常量
const (
	TaskOrderConfirmationEmail = "order:confirmation_email"
)

// 事件类型常量
const (
	EventOrderConfirmed = "order.confirmed"
)
