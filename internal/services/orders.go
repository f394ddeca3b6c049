package services

import (
	"context"
	"strings"
	"time"

	"github.com/denmor86/ya-pedidos/internal/logger"
	"github.com/denmor86/ya-pedidos/internal/metrics"
	"github.com/denmor86/ya-pedidos/internal/models"
	"github.com/denmor86/ya-pedidos/internal/storage"
	"github.com/denmor86/ya-pedidos/internal/validators"
	"go.uber.org/zap"
)

type Orders struct {
	Storage  storage.OrdersStorage
	Uploads  UploadsService
	Notifier Notifier
	IDs      *IDSequence
	Now      func() time.Time
}

// Создание сервиса
func NewOrders(storage storage.OrdersStorage, uploads UploadsService, notifier Notifier) *Orders {
	return &Orders{
		Storage:  storage,
		Uploads:  uploads,
		Notifier: notifier,
		IDs:      &IDSequence{},
		Now:      time.Now,
	}
}

// CreateOrder - проверяет данные, сохраняет файл и добавляет заказ в статусе pendiente
func (s *Orders) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	if req.File == nil {
		return nil, ErrFileRequired
	}
	if !validators.CheckEmail(email) {
		logger.Warn("Invalid email:", email)
		return nil, ErrEmailInvalid
	}

	upload, err := s.Uploads.Accept(ctx, req.File)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	order := models.Order{
		ID:               s.IDs.Next(now),
		Email:            email,
		Comment:          req.Comment,
		StoredFileName:   upload.StoredFileName,
		OriginalFileName: upload.OriginalFileName,
		FileSizeBytes:    upload.SizeBytes,
		CreatedAt:        now,
		Status:           models.OrderStatusPending,
		SourceIP:         req.SourceIP,
	}

	if err := s.Storage.AddOrder(ctx, order); err != nil {
		// заказ не создан, файл больше не нужен
		s.discardUpload(ctx, upload.StoredFileName)
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	logger.Info("Order created:", order.ID, order.Email, order.StoredFileName)
	return &order, nil
}

func (s *Orders) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	return s.Storage.GetOrder(ctx, id)
}

// ListOrders - все заказы (новые первыми) и счётчики, посчитанные по одному снимку
func (s *Orders) ListOrders(ctx context.Context) (*models.OrdersSummary, error) {
	orders, err := s.Storage.GetOrders(ctx)
	if err != nil {
		logger.Error("Failed to get orders:", zap.Error(err))
		return nil, err
	}

	summary := &models.OrdersSummary{Orders: orders, Total: len(orders)}
	for _, order := range orders {
		if order.IsApproved() {
			summary.Approved++
		} else {
			summary.Pending++
		}
	}
	return summary, nil
}

func (s *Orders) CountOrders(ctx context.Context) int {
	return s.Storage.CountOrders(ctx)
}

// ApproveOrder - переводит заказ pendiente -> aprobado.
// Повторное подтверждение ничего не меняет и письмо не отправляет.
// Уведомление отправляется после снятия блокировки хранилища, его неудача не отменяет подтверждение.
func (s *Orders) ApproveOrder(ctx context.Context, id int64) (*models.ApproveResult, error) {
	now := s.Now()
	order, changed, err := s.Storage.UpdateOrder(ctx, id, func(o *models.Order) (bool, error) {
		if o.IsApproved() {
			return false, nil
		}
		approvedAt := now
		o.Status = models.OrderStatusApproved
		o.ApprovedAt = &approvedAt
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	result := &models.ApproveResult{Order: *order, AlreadyApproved: !changed}
	if !changed {
		logger.Info("Order already approved:", id)
		return result, nil
	}

	metrics.OrdersApprovedTotal.Inc()
	logger.Info("Order approved:", id)

	// обрыв соединения клиентом не должен прерывать отправку письма
	notify := s.Notifier.NotifyApproved(context.WithoutCancel(ctx), *order)
	result.EmailSent = notify.Sent
	return result, nil
}

// DeleteOrder - удаляет заказ и его файл. Ошибка удаления файла только логируется.
func (s *Orders) DeleteOrder(ctx context.Context, id int64) error {
	order, err := s.Storage.DeleteOrder(ctx, id)
	if err != nil {
		return err
	}
	s.discardUpload(ctx, order.StoredFileName)

	metrics.OrdersDeletedTotal.Inc()
	logger.Info("Order deleted:", id)
	return nil
}

func (s *Orders) discardUpload(ctx context.Context, name string) {
	if err := s.Uploads.Discard(ctx, name); err != nil {
		logger.Error("Failed to remove upload:", name, zap.Error(err))
	}
}
