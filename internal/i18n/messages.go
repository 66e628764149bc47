package i18n

var messages = map[string]map[string]string{
	LocaleEnUS: {
		"error.bad_request":                 "Invalid request",
		"error.internal_error":              "Internal server error",
		"error.too_many_requests":           "Too many requests, please try again later",
		"error.rate_limited":                "Too many requests, please retry in %d seconds",
		"error.rate_limit_unavailable":      "Rate limiter is unavailable",
		"error.session_invalid":             "Session token is invalid or expired",
		"error.product_not_found":           "Product not found",
		"error.product_id_invalid":          "Product ID is invalid",
		"error.product_out_of_stock":        "Product is out of stock",
		"error.quantity_invalid":            "Quantity must be a positive integer",
		"error.cart_empty":                  "Your cart is empty",
		"error.checkout_validation_failed":  "Please correct the highlighted fields",
		"error.checkout_in_progress":        "Your order is being processed",
		"error.checkout_confirmed":          "This order has already been placed",
		"error.checkout_failed":             "Order could not be placed, please try again",
		"error.order_not_found":             "Order not found",
		"error.order_no_invalid":            "Order number is invalid",
		"checkout.cancelled":                "Checkout has been reset",
		"checkout.submitted":                "Processing your order",
		"checkout.confirmation_email":       "A confirmation email has been sent to %s.",
		"email.order_confirmation.subject":  "Order Confirmed: %s",
		"email.order_confirmation.greeting": "Hi %s,",
		"email.order_confirmation.body":     "Thank you for your purchase. Your order %s has been received and is being processed.",
		"email.order_confirmation.totals":   "Subtotal: $%s\nShipping: $%s\nTax: $%s\nTotal: $%s",
	},
	LocaleZhCN: {
		"error.bad_request":                 "请求参数错误",
		"error.internal_error":              "服务器内部错误",
		"error.too_many_requests":           "请求过于频繁，请稍后再试",
		"error.rate_limited":                "请求过于频繁，请在 %d 秒后重试",
		"error.rate_limit_unavailable":      "限流服务不可用",
		"error.session_invalid":             "会话令牌无效或已过期",
		"error.product_not_found":           "商品不存在",
		"error.product_id_invalid":          "商品ID无效",
		"error.product_out_of_stock":        "商品已售罄",
		"error.quantity_invalid":            "数量必须为正整数",
		"error.cart_empty":                  "购物车为空",
		"error.checkout_validation_failed":  "请修正标记的字段",
		"error.checkout_in_progress":        "订单正在处理中",
		"error.checkout_confirmed":          "该订单已提交",
		"error.checkout_failed":             "下单失败，请重试",
		"error.order_not_found":             "订单不存在",
		"error.order_no_invalid":            "订单号无效",
		"checkout.cancelled":                "结算已重置",
		"checkout.submitted":                "订单处理中",
		"checkout.confirmation_email":       "确认邮件已发送至 %s。",
		"email.order_confirmation.subject":  "订单已确认：%s",
		"email.order_confirmation.greeting": "%s，您好：",
		"email.order_confirmation.body":     "感谢您的购买，订单 %s 已收到，正在处理中。",
		"email.order_confirmation.totals":   "小计：$%s\n运费：$%s\n税费：$%s\n合计：$%s",
	},
}
