package models

import (
	"time"
)

// Order 已确认订单归档
type Order struct {
	ID            uint      `gorm:"primarykey" json:"id"`                                  // 主键
	OrderNo       string    `gorm:"uniqueIndex;not null" json:"order_no"`                  // 订单编号
	SessionID     string    `gorm:"type:varchar(64);index;not null" json:"-"`              // 会话ID
	Email         string    `gorm:"type:varchar(255);not null" json:"email"`               // 确认邮件接收地址
	FirstName     string    `gorm:"type:varchar(100)" json:"first_name"`                   // 名
	LastName      string    `gorm:"type:varchar(100)" json:"last_name"`                    // 姓
	Phone         string    `gorm:"type:varchar(50)" json:"phone"`                         // 电话
	Address       string    `gorm:"type:varchar(255)" json:"address"`                      // 地址
	City          string    `gorm:"type:varchar(100)" json:"city"`                         // 城市
	State         string    `gorm:"type:varchar(100)" json:"state"`                        // 州/省
	ZipCode       string    `gorm:"type:varchar(20)" json:"zip_code"`                      // 邮编
	Country       string    `gorm:"type:varchar(100)" json:"country"`                      // 国家
	PaymentMethod string    `gorm:"type:varchar(20);not null" json:"payment_method"`       // 支付方式
	Subtotal      Money     `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"` // 商品小计
	Shipping      Money     `gorm:"type:decimal(20,2);not null;default:0" json:"shipping"` // 运费
	Tax           Money     `gorm:"type:decimal(20,2);not null;default:0" json:"tax"`      // 税费
	Total         Money     `gorm:"type:decimal(20,2);not null;default:0" json:"total"`    // 应付总额
	TotalItems    int       `gorm:"not null;default:0" json:"total_items"`                 // 商品件数
	CreatedAt     time.Time `gorm:"index" json:"created_at"`                               // 创建时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
