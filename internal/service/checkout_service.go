package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/shopfront/internal/cart"
	"github.com/shopfront/internal/checkout"
	"github.com/shopfront/internal/events"
	"github.com/shopfront/internal/i18n"
	"github.com/shopfront/internal/logger"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/pricing"
	"github.com/shopfront/internal/queue"
	"github.com/shopfront/internal/repository"

	"gorm.io/gorm"
)

const orderNoMaxAttempts = 5

// CheckoutView 结算页数据（用于响应）
type CheckoutView struct {
	checkout.View
	TotalItems int                 `json:"total_items"`
	Summary    pricing.SummaryView `json:"summary"`
}

// SubmitCheckoutInput 提交结算输入
type SubmitCheckoutInput struct {
	SessionID string
	Form      checkout.Form
	TraceID   string
}

// CheckoutServiceOptions 结算服务依赖
type CheckoutServiceOptions struct {
	Carts       *cart.Registry
	Sessions    *checkout.Registry
	Processor   *checkout.Processor
	OrderRepo   repository.OrderRepository
	QueueClient *queue.Client
	Publisher   events.Publisher
	OrderPrefix string
}

// CheckoutService 结算服务
type CheckoutService struct {
	carts       *cart.Registry
	sessions    *checkout.Registry
	processor   *checkout.Processor
	orderRepo   repository.OrderRepository
	queueClient *queue.Client
	publisher   events.Publisher
	orderPrefix string

	baseCtx  context.Context
	shutdown context.CancelFunc
	inflight sync.WaitGroup
}

// NewCheckoutService 创建结算服务
func NewCheckoutService(opts CheckoutServiceOptions) *CheckoutService {
	ctx, cancel := context.WithCancel(context.Background())
	sessions := opts.Sessions
	if sessions == nil {
		sessions = checkout.NewRegistry()
	}
	processor := opts.Processor
	if processor == nil {
		processor = checkout.NewProcessor(0)
	}
	publisher := opts.Publisher
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &CheckoutService{
		carts:       opts.Carts,
		sessions:    sessions,
		processor:   processor,
		orderRepo:   opts.OrderRepo,
		queueClient: opts.QueueClient,
		publisher:   publisher,
		orderPrefix: opts.OrderPrefix,
		baseCtx:     ctx,
		shutdown:    cancel,
	}
}

// Get 获取结算状态与金额汇总，只读不会为会话创建状态机
func (s *CheckoutService) Get(ctx context.Context, sessionID string) *CheckoutView {
	sess, ok := s.sessions.Peek(sessionID)
	if !ok {
		sess = checkout.NewSession()
	}
	return s.buildView(ctx, sessionID, sess)
}

// Submit 提交结算表单，校验通过后异步确认订单
func (s *CheckoutService) Submit(ctx context.Context, input SubmitCheckoutInput) (*CheckoutView, error) {
	sessionID := strings.TrimSpace(input.SessionID)
	store := s.carts.Get(ctx, sessionID)
	sess := s.sessions.Get(sessionID)

	switch sess.State() {
	case checkout.StateSubmitting:
		return s.buildView(ctx, sessionID, sess), ErrCheckoutInProgress
	case checkout.StateConfirmed:
		return s.buildView(ctx, sessionID, sess), ErrCheckoutConfirmed
	}
	if store.IsEmpty() {
		return nil, ErrCartEmpty
	}

	var order *models.Order
	errs, err := sess.Submit(input.Form, func() (*checkout.Task, error) {
		lines := store.Lines()
		if len(lines) == 0 {
			return nil, ErrCartEmpty
		}
		var items []models.OrderItem
		order, items = buildOrder(sessionID, input.Form.WithDefaults(), lines)
		return s.start(sessionID, sess, store, order, items, input.TraceID), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrCheckoutInProgress):
			return s.buildView(ctx, sessionID, sess), ErrCheckoutInProgress
		case errors.Is(err, checkout.ErrCheckoutConfirmed):
			return s.buildView(ctx, sessionID, sess), ErrCheckoutConfirmed
		default:
			return nil, err
		}
	}
	if len(errs) > 0 {
		logger.Debugw("checkout_validation_failed", "session_id", sessionID, "fields", len(errs))
		return s.buildView(ctx, sessionID, sess), ErrCheckoutValidation
	}

	logger.Infow("checkout_submitted",
		"session_id", sessionID,
		"total_items", order.TotalItems,
		"total", order.Total.String(),
		"payment_method", order.PaymentMethod,
	)
	return s.buildView(ctx, sessionID, sess), nil
}

// start 启动确认任务，在会话锁内调用
func (s *CheckoutService) start(sessionID string, sess *checkout.Session, store *cart.Store, order *models.Order, items []models.OrderItem, traceID string) *checkout.Task {
	s.inflight.Add(1)
	task := s.processor.Start(s.baseCtx, func(taskCtx context.Context, task *checkout.Task) error {
		defer s.inflight.Done()
		return s.confirm(taskCtx, task, sess, store, order, items, traceID)
	})
	go func() {
		<-task.Done()
		if task.Cancelled() {
			s.inflight.Done()
			logger.Infow("checkout_cancelled", "session_id", sessionID)
		}
	}()
	return task
}

// Reset 重置结算表单，取消尚未完成的订单确认
func (s *CheckoutService) Reset(ctx context.Context, sessionID string) (*CheckoutView, bool) {
	sess, ok := s.sessions.Peek(sessionID)
	if !ok {
		return s.buildView(ctx, sessionID, checkout.NewSession()), false
	}
	cancelled := sess.Reset()
	logger.Infow("checkout_reset", "session_id", sessionID, "cancelled", cancelled)
	return s.buildView(ctx, sessionID, sess), cancelled
}

// Await 等待当前处理中的订单确认结束
func (s *CheckoutService) Await(ctx context.Context, sessionID string) error {
	sess, ok := s.sessions.Peek(sessionID)
	if !ok {
		return nil
	}
	task := sess.Pending()
	if task == nil {
		return nil
	}
	return task.Wait(ctx)
}

// Shutdown 取消所有未开始的确认任务，并等待执行中的确认完成
func (s *CheckoutService) Shutdown(ctx context.Context) error {
	s.shutdown()
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// confirm 归档订单并确认会话，任务已被重置或取代时回滚归档且不清空购物车
func (s *CheckoutService) confirm(ctx context.Context, task *checkout.Task, sess *checkout.Session, store *cart.Store, order *models.Order, items []models.OrderItem, traceID string) error {
	if !sess.Owns(task) {
		logger.Infow("checkout_confirm_superseded", "session_id", order.SessionID)
		return checkout.ErrTaskSuperseded
	}
	orderNo, err := s.allocateOrderNo()
	if err == nil {
		order.OrderNo = orderNo
		err = s.orderRepo.Transaction(func(tx *gorm.DB) error {
			if err := s.orderRepo.WithTx(tx).Create(order, items); err != nil {
				return err
			}
			return sess.Confirm(task, orderNo)
		})
	}
	if errors.Is(err, checkout.ErrTaskSuperseded) {
		logger.Infow("checkout_confirm_superseded", "session_id", order.SessionID, "order_no", orderNo)
		return err
	}
	if err != nil {
		logger.Errorw("checkout_order_archive_failed", "session_id", order.SessionID, "error", err)
		if failErr := sess.Fail(task, i18n.T(i18n.DefaultLocale, "error.checkout_failed")); failErr != nil {
			logger.Debugw("checkout_fail_superseded", "session_id", order.SessionID)
		}
		return err
	}

	store.Clear()
	logger.Infow("checkout_confirmed",
		"session_id", order.SessionID,
		"order_no", orderNo,
		"total", order.Total.String(),
	)

	if s.queueClient != nil {
		if err := s.queueClient.EnqueueOrderConfirmationEmail(queue.OrderConfirmationEmailPayload{
			OrderNo: orderNo,
			Email:   order.Email,
		}); err != nil {
			logger.Warnw("checkout_enqueue_confirmation_email_failed", "order_no", orderNo, "error", err)
		}
	}
	event, err := events.NewOrderConfirmed(order, traceID)
	if err != nil {
		logger.Warnw("checkout_build_event_failed", "order_no", orderNo, "error", err)
		return nil
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.Warnw("checkout_publish_event_failed", "order_no", orderNo, "error", err)
	}
	return nil
}

func (s *CheckoutService) allocateOrderNo() (string, error) {
	for i := 0; i < orderNoMaxAttempts; i++ {
		orderNo := checkout.GenerateOrderNo(s.orderPrefix)
		exists, err := s.orderRepo.ExistsOrderNo(orderNo)
		if err != nil {
			return "", err
		}
		if !exists {
			return orderNo, nil
		}
	}
	return "", ErrOrderNoExhausted
}

func (s *CheckoutService) buildView(ctx context.Context, sessionID string, sess *checkout.Session) *CheckoutView {
	var lines []cart.Line
	if store, ok := s.carts.Find(ctx, sessionID); ok {
		lines = store.Lines()
	}
	cartView := buildCartView(lines)
	return &CheckoutView{
		View:       sess.View(),
		TotalItems: cartView.TotalItems,
		Summary:    cartView.Summary,
	}
}

// buildOrder 根据购物车行构建归档订单，金额在入库时取整
func buildOrder(sessionID string, form checkout.Form, lines []cart.Line) (*models.Order, []models.OrderItem) {
	view := buildCartView(lines)
	summary := pricing.Calculate(view.TotalPrice.Decimal)
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.OrderItem{
			ProductID: line.ProductID(),
			Name:      line.Product.Name,
			UnitPrice: line.Product.Price,
			Quantity:  line.Quantity,
			LineTotal: models.Money{Decimal: line.Total()},
		})
	}
	order := &models.Order{
		SessionID:     sessionID,
		Email:         strings.TrimSpace(form.Email),
		FirstName:     strings.TrimSpace(form.FirstName),
		LastName:      strings.TrimSpace(form.LastName),
		Phone:         strings.TrimSpace(form.Phone),
		Address:       strings.TrimSpace(form.Address),
		City:          strings.TrimSpace(form.City),
		State:         strings.TrimSpace(form.State),
		ZipCode:       strings.TrimSpace(form.ZipCode),
		Country:       strings.TrimSpace(form.Country),
		PaymentMethod: form.PaymentMethod,
		Subtotal:      models.Money{Decimal: summary.Subtotal},
		Shipping:      models.Money{Decimal: summary.Shipping},
		Tax:           models.Money{Decimal: summary.Tax},
		Total:         models.Money{Decimal: summary.Total},
		TotalItems:    view.TotalItems,
	}
	return order, items
}
