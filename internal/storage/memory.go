package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/denmor86/ya-pedidos/internal/models"
)

// MemoryStorage - хранилище заказов в памяти процесса.
// Каждая операция атомарна, наружу отдаются только копии.
type MemoryStorage struct {
	mu     sync.RWMutex
	orders []*models.Order // новые первыми
	index  map[int64]*models.Order
}

// Создание хранилища
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{index: make(map[int64]*models.Order)}
}

// AddOrder - добавляет заказ в начало списка
func (s *MemoryStorage) AddOrder(_ context.Context, order models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[order.ID]; ok {
		return fmt.Errorf("order %d: %w", order.ID, ErrAlreadyExists)
	}
	stored := order
	s.orders = append([]*models.Order{&stored}, s.orders...)
	s.index[order.ID] = &stored
	return nil
}

func (s *MemoryStorage) GetOrder(_ context.Context, id int64) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.index[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	result := *order
	return &result, nil
}

// GetOrders - снимок всех заказов, новые первыми
func (s *MemoryStorage) GetOrders(_ context.Context) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]models.Order, 0, len(s.orders))
	for _, order := range s.orders {
		orders = append(orders, *order)
	}
	return orders, nil
}

// UpdateOrder - применяет mutate к заказу под блокировкой.
// При ошибке mutate заказ остаётся без изменений.
func (s *MemoryStorage) UpdateOrder(_ context.Context, id int64, mutate OrderMutator) (*models.Order, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.index[id]
	if !ok {
		return nil, false, ErrOrderNotFound
	}
	draft := *order
	changed, err := mutate(&draft)
	if err != nil {
		return nil, false, err
	}
	if changed {
		*order = draft
	}
	result := *order
	return &result, changed, nil
}

// DeleteOrder - удаляет заказ и возвращает удалённую запись
func (s *MemoryStorage) DeleteOrder(_ context.Context, id int64) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.index[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	delete(s.index, id)
	for i, item := range s.orders {
		if item.ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			break
		}
	}
	result := *order
	return &result, nil
}

func (s *MemoryStorage) CountOrders(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}
