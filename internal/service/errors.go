package service

import "errors"

var (
	// ErrProductNotFound 商品不存在
	ErrProductNotFound = errors.New("product not found")
	// ErrProductOutOfStock 商品已售罄
	ErrProductOutOfStock = errors.New("product out of stock")
	// ErrInvalidQuantity 数量非法
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrCartEmpty 购物车为空
	ErrCartEmpty = errors.New("cart is empty")
	// ErrCheckoutValidation 结算表单校验失败
	ErrCheckoutValidation = errors.New("checkout form invalid")
	// ErrCheckoutInProgress 订单处理中
	ErrCheckoutInProgress = errors.New("checkout in progress")
	// ErrCheckoutConfirmed 订单已确认
	ErrCheckoutConfirmed = errors.New("checkout already confirmed")
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderFetchFailed 订单查询失败
	ErrOrderFetchFailed = errors.New("order fetch failed")
	// ErrOrderNoExhausted 订单号分配失败
	ErrOrderNoExhausted = errors.New("order number allocation failed")
	// ErrSessionInvalid 会话令牌无效
	ErrSessionInvalid = errors.New("session token invalid")
)
