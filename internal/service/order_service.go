package service

import (
	"strings"

	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/repository"
)

// OrderService 已确认订单查询服务
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// GetBySession 获取会话自己的订单
func (s *OrderService) GetBySession(orderNo, sessionID string) (*models.Order, error) {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByOrderNoAndSession(orderNo, sessionID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetByOrderNo 按订单号获取订单，供异步任务使用
func (s *OrderService) GetByOrderNo(orderNo string) (*models.Order, error) {
	order, err := s.orderRepo.GetByOrderNo(orderNo)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListBySession 分页获取会话订单
func (s *OrderService) ListBySession(sessionID string, page, pageSize int) ([]models.Order, int64, error) {
	orders, total, err := s.orderRepo.ListBySession(repository.OrderListFilter{
		SessionID: sessionID,
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		return nil, 0, ErrOrderFetchFailed
	}
	return orders, total, nil
}
