package service

import (
	"context"
	"errors"

	"github.com/shopfront/internal/cart"
	"github.com/shopfront/internal/catalog"
	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/logger"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/pricing"

	"github.com/shopspring/decimal"
)

// CartItemView 购物车项（用于响应）
type CartItemView struct {
	ProductID uint           `json:"product_id"`
	Quantity  int            `json:"quantity"`
	UnitPrice models.Money   `json:"unit_price"`
	LineTotal models.Money   `json:"line_total"`
	Product   models.Product `json:"product"`
}

// CartView 购物车（用于响应）
type CartView struct {
	Items      []CartItemView      `json:"items"`
	TotalItems int                 `json:"total_items"`
	TotalPrice models.Money        `json:"total_price"`
	Summary    pricing.SummaryView `json:"summary"`
}

// CartService 购物车服务
type CartService struct {
	catalog  *catalog.Catalog
	registry *cart.Registry
}

// NewCartService 创建购物车服务
func NewCartService(c *catalog.Catalog, registry *cart.Registry) *CartService {
	return &CartService{
		catalog:  c,
		registry: registry,
	}
}

// Get 获取会话购物车，只读不会为会话创建购物车
func (s *CartService) Get(ctx context.Context, sessionID string) *CartView {
	store, ok := s.registry.Find(ctx, sessionID)
	if !ok {
		return buildCartView(nil)
	}
	return buildCartView(store.Lines())
}

// AddItem 加入购物车
func (s *CartService) AddItem(ctx context.Context, sessionID string, productID uint, quantity int) (*CartView, error) {
	if quantity <= 0 || quantity > constants.MaxCartLineQuantity {
		return nil, ErrInvalidQuantity
	}
	product, ok := s.catalog.FindByID(productID)
	if !ok {
		return nil, ErrProductNotFound
	}
	if !product.InStock {
		return nil, ErrProductOutOfStock
	}
	store := s.registry.Get(ctx, sessionID)
	if err := store.Add(*product, quantity); err != nil {
		if errors.Is(err, cart.ErrInvalidQuantity) {
			return nil, ErrInvalidQuantity
		}
		return nil, err
	}
	logger.Infow("cart_item_added",
		"session_id", sessionID,
		"product_id", productID,
		"quantity", quantity,
	)
	return buildCartView(store.Lines()), nil
}

// UpdateItem 设置购物车项数量，quantity <= 0 时移除
func (s *CartService) UpdateItem(ctx context.Context, sessionID string, productID uint, quantity int) (*CartView, error) {
	if quantity > constants.MaxCartLineQuantity {
		return nil, ErrInvalidQuantity
	}
	if _, ok := s.catalog.FindByID(productID); !ok {
		return nil, ErrProductNotFound
	}
	store, ok := s.registry.Find(ctx, sessionID)
	if !ok {
		return buildCartView(nil), nil
	}
	if err := store.UpdateQuantity(productID, quantity); err != nil {
		return nil, ErrInvalidQuantity
	}
	logger.Infow("cart_item_updated",
		"session_id", sessionID,
		"product_id", productID,
		"quantity", quantity,
	)
	return buildCartView(store.Lines()), nil
}

// RemoveItem 移除购物车项
func (s *CartService) RemoveItem(ctx context.Context, sessionID string, productID uint) (*CartView, error) {
	if _, ok := s.catalog.FindByID(productID); !ok {
		return nil, ErrProductNotFound
	}
	store, ok := s.registry.Find(ctx, sessionID)
	if !ok {
		return buildCartView(nil), nil
	}
	store.Remove(productID)
	logger.Infow("cart_item_removed", "session_id", sessionID, "product_id", productID)
	return buildCartView(store.Lines()), nil
}

// Clear 清空购物车
func (s *CartService) Clear(ctx context.Context, sessionID string) *CartView {
	store, ok := s.registry.Find(ctx, sessionID)
	if !ok {
		return buildCartView(nil)
	}
	store.Clear()
	logger.Infow("cart_cleared", "session_id", sessionID)
	return buildCartView(store.Lines())
}

// buildCartView 基于同一份行快照计算件数与金额
func buildCartView(lines []cart.Line) *CartView {
	items := make([]CartItemView, 0, len(lines))
	totalItems := 0
	totalPrice := decimal.Zero
	for _, line := range lines {
		lineTotal := line.Total()
		items = append(items, CartItemView{
			ProductID: line.ProductID(),
			Quantity:  line.Quantity,
			UnitPrice: line.Product.Price,
			LineTotal: models.Money{Decimal: lineTotal},
			Product:   line.Product,
		})
		totalItems += line.Quantity
		totalPrice = totalPrice.Add(lineTotal)
	}
	return &CartView{
		Items:      items,
		TotalItems: totalItems,
		TotalPrice: models.Money{Decimal: totalPrice},
		Summary:    pricing.Calculate(totalPrice).View(),
	}
}
