package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/models"

	"github.com/google/uuid"
)

const (
	producerName        = "shopfront"
	headerEventType     = "x-event-type"
	headerEventVersion  = "x-event-version"
	currentEventVersion = 1
)

// Envelope 事件信封
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

// OrderConfirmedItem 已确认订单的商品行
type OrderConfirmedItem struct {
	ProductID uint         `json:"product_id"`
	Name      string       `json:"name"`
	Quantity  int          `json:"quantity"`
	UnitPrice models.Money `json:"unit_price"`
}

// OrderConfirmedPayload 订单确认事件载荷
type OrderConfirmedPayload struct {
	OrderNo       string               `json:"order_no"`
	PaymentMethod string               `json:"payment_method"`
	TotalItems    int                  `json:"total_items"`
	Subtotal      models.Money         `json:"subtotal"`
	Shipping      models.Money         `json:"shipping"`
	Tax           models.Money         `json:"tax"`
	Total         models.Money         `json:"total"`
	Items         []OrderConfirmedItem `json:"items"`
}

// NewOrderConfirmed 根据归档订单构建事件
func NewOrderConfirmed(order *models.Order, traceID string) (*Envelope, error) {
	if order == nil {
		return nil, fmt.Errorf("order is nil")
	}
	items := make([]OrderConfirmedItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderConfirmedItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	payload, err := json.Marshal(OrderConfirmedPayload{
		OrderNo:       order.OrderNo,
		PaymentMethod: order.PaymentMethod,
		TotalItems:    order.TotalItems,
		Subtotal:      order.Subtotal,
		Shipping:      order.Shipping,
		Tax:           order.Tax,
		Total:         order.Total,
		Items:         items,
	})
	if err != nil {
		return nil, fmt.Errorf("encode order confirmed payload: %w", err)
	}
	return &Envelope{
		EventID:       uuid.NewString(),
		EventType:     constants.EventOrderConfirmed,
		EventVersion:  currentEventVersion,
		OccurredAt:    time.Now().UTC(),
		Producer:      producerName,
		TraceID:       traceID,
		CorrelationID: order.OrderNo,
		Payload:       payload,
	}, nil
}

// PartitionKey 同一订单的事件落在同一分区
func (e *Envelope) PartitionKey() []byte {
	return []byte(e.CorrelationID)
}
