package services

import (
	"context"
	"fmt"
	"time"

	"github.com/denmor86/ya-pedidos/internal/logger"
	"github.com/denmor86/ya-pedidos/internal/mailer"
	"github.com/denmor86/ya-pedidos/internal/metrics"
	"github.com/denmor86/ya-pedidos/internal/models"
	"go.uber.org/zap"
)

const ApprovalSubject = "Pago aprobado"

type Notifications struct {
	Mail    MailSender
	Timeout time.Duration
}

// Создание сервиса, mail == nil означает что почта не настроена
func NewNotifications(mail MailSender, timeout time.Duration) *Notifications {
	return &Notifications{Mail: mail, Timeout: timeout}
}

// ApprovalBody - HTML письма о подтверждении оплаты
func ApprovalBody(order models.Order) string {
	return fmt.Sprintf("<h2>Pago aprobado ✅</h2><p>ID: %d</p>", order.ID)
}

// NotifyApproved - отправляет письмо о подтверждении.
// Всегда завершается результатом, ошибки и паники транспорта превращаются в Sent=false.
func (n *Notifications) NotifyApproved(ctx context.Context, order models.Order) (result models.NotifyResult) {
	defer func() {
		if r := recover(); r != nil {
			result = models.NotifyResult{Reason: fmt.Sprintf("mail transport panic: %v", r)}
		}
		if result.Sent {
			metrics.NotificationsTotal.WithLabelValues(metrics.NotificationSent).Inc()
			logger.Info("Approval email sent:", order.ID, order.Email)
			return
		}
		metrics.NotificationsTotal.WithLabelValues(metrics.NotificationFailed).Inc()
		logger.Warn("Email not sent:", order.ID, result.Reason)
	}()

	if n.Mail == nil {
		return models.NotifyResult{Reason: mailer.ErrNotConfigured.Error()}
	}
	if n.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.Timeout)
		defer cancel()
	}

	if err := n.Mail.Send(ctx, order.Email, ApprovalSubject, ApprovalBody(order)); err != nil {
		logger.Error("Failed to send approval email:", zap.Error(err))
		return models.NotifyResult{Reason: err.Error()}
	}
	return models.NotifyResult{Sent: true}
}
