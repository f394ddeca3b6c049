//go:generate mockgen -source=mailer.go -destination=mocks/mock_mailer.go -package=mocks
package mailer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/ya-pedidos/internal/config"
	"github.com/denmor86/ya-pedidos/internal/logger"
	"github.com/sony/gobreaker"
	"gopkg.in/gomail.v2"
)

// Sender - SMTP транспорт (gomail.Dialer)
type Sender interface {
	DialAndSend(msgs ...*gomail.Message) error
}

var ErrNotConfigured = errors.New("mail transport not configured")

// Mailer - отправка писем через почтовый сервер
type Mailer struct {
	Sender   Sender
	From     string
	FromName string
	Limiter  *RateLimiter
	Breaker  *gobreaker.CircuitBreaker
}

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "smtp-relay",
		Timeout: 30 * time.Second, // через 30 сек снова пробуем отправить
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit Breaker", name, from.String(), "->", to.String())
		},
	})
}

// NewMailer - создаёт отправителя по настройкам, без учётных данных возвращает ErrNotConfigured
func NewMailer(cfg config.MailConfig) (*Mailer, error) {
	if !cfg.Configured() {
		return nil, ErrNotConfigured
	}
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return NewMailerWithSender(dialer, cfg.Username, cfg.FromName, cfg.Interval), nil
}

func NewMailerWithSender(sender Sender, from string, fromName string, interval time.Duration) *Mailer {
	return &Mailer{
		Sender:   sender,
		From:     from,
		FromName: fromName,
		Limiter:  NewRateLimiter(interval),
		Breaker:  InitCircuitBreaker(),
	}
}

// Send - отправляет HTML письмо. Блокирует до ответа сервера или отмены ctx.
func (m *Mailer) Send(ctx context.Context, to string, subject string, htmlBody string) error {
	if err := m.Limiter.Wait(ctx); err != nil {
		return fmt.Errorf("mail rate limit: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.From, m.FromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	_, err := m.Breaker.Execute(func() (interface{}, error) {
		return nil, m.dialAndSend(ctx, msg)
	})
	return err
}

// dialAndSend - gomail не принимает context, поэтому ожидание ограничиваем сами.
// Горутина завершится вместе с SMTP сессией.
func (m *Mailer) dialAndSend(ctx context.Context, msg *gomail.Message) error {
	done := make(chan error, 1)
	go func() {
		done <- m.Sender.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("smtp send aborted: %w", ctx.Err())
	}
}
