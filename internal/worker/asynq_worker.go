package worker

import (
	"context"
	"errors"
	"strings"

	"github.com/shopfront/internal/logger"
	"github.com/shopfront/internal/provider"
	"github.com/shopfront/internal/queue"
	"github.com/shopfront/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderConfirmationEmail, c.handleOrderConfirmationEmail)
}

func (c *Consumer) handleOrderConfirmationEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_confirmation_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	payload, err := queue.ParseOrderConfirmationEmailPayload(task)
	if err != nil {
		logger.Warnw("worker_order_confirmation_email_unmarshal_failed", "error", err)
		return err
	}
	orderNo := strings.TrimSpace(payload.OrderNo)
	if orderNo == "" {
		logger.Debugw("worker_order_confirmation_email_skip_invalid_payload", "order_no", payload.OrderNo)
		return nil
	}
	if c.OrderService == nil || c.EmailService == nil {
		logger.Warnw("worker_order_confirmation_email_skip_service_nil", "order_no", orderNo)
		return nil
	}
	order, err := c.OrderService.GetByOrderNo(orderNo)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			logger.Debugw("worker_order_confirmation_email_skip_order_not_found", "order_no", orderNo)
			return nil
		}
		logger.Warnw("worker_order_confirmation_email_fetch_order_failed", "order_no", orderNo, "error", err)
		return err
	}
	receiverEmail := strings.TrimSpace(payload.Email)
	if receiverEmail == "" {
		receiverEmail = strings.TrimSpace(order.Email)
	}
	if receiverEmail == "" {
		logger.Debugw("worker_order_confirmation_email_skip_empty_receiver", "order_no", orderNo)
		return nil
	}
	if err := c.EmailService.SendOrderConfirmation(receiverEmail, order, ""); err != nil {
		logger.Warnw("worker_order_confirmation_email_send_failed",
			"order_no", orderNo,
			"receiver_email", receiverEmail,
			"error", err,
		)
		return err
	}
	logger.Infow("worker_order_confirmation_email_sent", "order_no", orderNo)
	return nil
}
