package public

import (
	"strings"

	handlershared "github.com/shopfront/internal/http/handlers/shared"
	"github.com/shopfront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetOrder 获取当前会话的订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	orderNo := strings.TrimSpace(c.Param("order_no"))
	if orderNo == "" {
		respondError(c, response.CodeBadRequest, "error.order_no_invalid", nil)
		return
	}
	order, err := h.OrderService.GetBySession(orderNo, sessionID)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "error.internal_error")
		return
	}
	response.Success(c, order)
}

// ListOrders 当前会话的订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	page, pageSize := handlershared.QueryPagination(c)
	orders, total, err := h.OrderService.ListBySession(sessionID, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal_error", err)
		return
	}
	response.SuccessWithPage(c, orders, response.NewPagination(page, pageSize, total))
}
