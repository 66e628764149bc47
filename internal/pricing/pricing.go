package pricing

import (
	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/models"

	"github.com/shopspring/decimal"
)

var (
	freeShippingThreshold = decimal.RequireFromString(constants.FreeShippingThreshold)
	standardShippingCost  = decimal.RequireFromString(constants.StandardShippingCost)
	salesTaxRate          = decimal.RequireFromString(constants.SalesTaxRate)
)

// Summary 订单金额汇总，字段均为未取整的精确值
type Summary struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// SummaryView 展示用金额汇总，序列化时保留 2 位小数
type SummaryView struct {
	Subtotal     models.Money `json:"subtotal"`
	Shipping     models.Money `json:"shipping"`
	Tax          models.Money `json:"tax"`
	Total        models.Money `json:"total"`
	FreeShipping bool         `json:"free_shipping"`
}

// Calculate 计算运费、税费与合计
// 小计严格大于免邮门槛时免运费，税费按小计计算
func Calculate(subtotal decimal.Decimal) Summary {
	if subtotal.IsNegative() {
		subtotal = decimal.Zero
	}
	shipping := standardShippingCost
	if subtotal.GreaterThan(freeShippingThreshold) {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(salesTaxRate)
	return Summary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}

// FreeShipping 是否免运费
func (s Summary) FreeShipping() bool {
	return s.Shipping.IsZero()
}

// View 转换为展示结构
func (s Summary) View() SummaryView {
	return SummaryView{
		Subtotal:     models.Money{Decimal: s.Subtotal},
		Shipping:     models.Money{Decimal: s.Shipping},
		Tax:          models.Money{Decimal: s.Tax},
		Total:        models.Money{Decimal: s.Total},
		FreeShipping: s.FreeShipping(),
	}
}

// AmountToFreeShipping 距离免邮还差的金额，已免邮时为 0
func (s Summary) AmountToFreeShipping() decimal.Decimal {
	if s.FreeShipping() {
		return decimal.Zero
	}
	return freeShippingThreshold.Sub(s.Subtotal)
}
