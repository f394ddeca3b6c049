//go:generate mockgen -source=storage.go -destination=mocks/mock_storage.go -package=mocks
package storage

import (
	"context"
	"errors"
	"io"

	"github.com/denmor86/ya-pedidos/internal/models"
)

// OrderMutator изменяет заказ на месте под блокировкой хранилища.
// Возвращает false, если изменений не было.
type OrderMutator func(order *models.Order) (bool, error)

// OrdersStorage - хранилище заказов
type OrdersStorage interface {
	AddOrder(ctx context.Context, order models.Order) error
	GetOrder(ctx context.Context, id int64) (*models.Order, error)
	GetOrders(ctx context.Context) ([]models.Order, error)
	UpdateOrder(ctx context.Context, id int64, mutate OrderMutator) (*models.Order, bool, error)
	DeleteOrder(ctx context.Context, id int64) (*models.Order, error)
	CountOrders(ctx context.Context) int
}

// FilesStorage - хранилище загруженных файлов
type FilesStorage interface {
	Save(ctx context.Context, name string, content io.Reader, limit int64) (int64, error)
	Remove(ctx context.Context, name string) error
	Dir() string
}

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrFileTooLarge  = errors.New("file exceeds size limit")
	ErrInvalidName   = errors.New("invalid file name")
)
