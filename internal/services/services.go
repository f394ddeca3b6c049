//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/ya-pedidos/internal/models"
	"github.com/denmor86/ya-pedidos/internal/storage"
)

// OrdersService - жизненный цикл заказов
type OrdersService interface {
	CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error)
	GetOrder(ctx context.Context, id int64) (*models.Order, error)
	ListOrders(ctx context.Context) (*models.OrdersSummary, error)
	ApproveOrder(ctx context.Context, id int64) (*models.ApproveResult, error)
	DeleteOrder(ctx context.Context, id int64) error
	CountOrders(ctx context.Context) int
}

// UploadsService - приём и удаление файлов подтверждения оплаты
type UploadsService interface {
	Accept(ctx context.Context, file *models.UploadFile) (*models.UploadDescriptor, error)
	Discard(ctx context.Context, storedFileName string) error
}

// Notifier - уведомление клиента о подтверждении заказа
type Notifier interface {
	NotifyApproved(ctx context.Context, order models.Order) models.NotifyResult
}

// MailSender - почтовый транспорт
type MailSender interface {
	Send(ctx context.Context, to string, subject string, htmlBody string) error
}

var (
	ErrValidation    = errors.New("validation error")
	ErrEmailRequired = fmt.Errorf("%w: email is required", ErrValidation)
	ErrEmailInvalid  = fmt.Errorf("%w: invalid email", ErrValidation)
	ErrFileRequired  = fmt.Errorf("%w: payment proof file is required", ErrValidation)

	ErrOrderNotFound = storage.ErrOrderNotFound
)
