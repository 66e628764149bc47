package service

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/shopfront/internal/i18n"
	"github.com/shopfront/internal/logger"
	"github.com/shopfront/internal/models"
)

// Mailer 邮件投递
type Mailer interface {
	Send(to, subject, body string) error
}

// LogMailer 只记录日志的投递实现，不对外发送
type LogMailer struct{}

// Send 记录邮件内容
func (LogMailer) Send(to, subject, body string) error {
	logger.Infow("email_dispatched",
		"to", to,
		"subject", subject,
		"body_length", len(body),
	)
	logger.Debugw("email_body", "to", to, "body", body)
	return nil
}

// EmailService 邮件服务
type EmailService struct {
	mailer Mailer
}

// NewEmailService 创建邮件服务，mailer 为空时使用 LogMailer
func NewEmailService(mailer Mailer) *EmailService {
	if mailer == nil {
		mailer = LogMailer{}
	}
	return &EmailService{mailer: mailer}
}

// SendOrderConfirmation 发送下单确认邮件
func (s *EmailService) SendOrderConfirmation(toEmail string, order *models.Order, locale string) error {
	if order == nil {
		return ErrOrderNotFound
	}
	address, err := mail.ParseAddress(strings.TrimSpace(toEmail))
	if err != nil {
		return fmt.Errorf("invalid receiver email: %w", err)
	}
	subject, body := buildOrderConfirmationContent(order, locale)
	return s.mailer.Send(address.Address, subject, body)
}

func buildOrderConfirmationContent(order *models.Order, locale string) (string, string) {
	normalized := i18n.NormalizeLocale(locale)
	subject := i18n.Sprintf(normalized, "email.order_confirmation.subject", order.OrderNo)

	var b strings.Builder
	b.WriteString(i18n.Sprintf(normalized, "email.order_confirmation.greeting", strings.TrimSpace(order.FirstName)))
	b.WriteString("\n\n")
	b.WriteString(i18n.Sprintf(normalized, "email.order_confirmation.body", order.OrderNo))
	b.WriteString("\n\n")
	for _, item := range order.Items {
		b.WriteString(fmt.Sprintf("%d x %s  $%s\n", item.Quantity, item.Name, item.LineTotal.String()))
	}
	b.WriteString("\n")
	b.WriteString(i18n.Sprintf(normalized, "email.order_confirmation.totals",
		order.Subtotal.String(),
		order.Shipping.String(),
		order.Tax.String(),
		order.Total.String(),
	))
	return subject, b.String()
}
