package storage

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/denmor86/ya-pedidos/internal/models"
	"github.com/google/go-cmp/cmp"
)

func newOrder(id int64, status models.OrderStatus) models.Order {
	return models.Order{
		ID:             id,
		Email:          "a@b.com",
		StoredFileName: "file.png",
		CreatedAt:      time.UnixMilli(id),
		Status:         status,
	}
}

func TestMemoryStorage_AddAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	for _, id := range []int64{1, 2, 3} {
		if err := s.AddOrder(ctx, newOrder(id, models.OrderStatusPending)); err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
	}

	if err := s.AddOrder(ctx, newOrder(2, models.OrderStatusPending)); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("Expected error: '%v', got: '%v'", ErrAlreadyExists, err)
	}

	orders, err := s.GetOrders(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	var ids []int64
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	if diff := cmp.Diff([]int64{3, 2, 1}, ids); diff != "" {
		t.Errorf("Orders must be newest first (-want +got):\n%s", diff)
	}

	order, err := s.GetOrder(ctx, 2)
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if diff := cmp.Diff(newOrder(2, models.OrderStatusPending), *order); diff != "" {
		t.Errorf("Unexpected order (-want +got):\n%s", diff)
	}

	// изменение копии не влияет на хранилище
	order.Email = "changed@b.com"
	again, _ := s.GetOrder(ctx, 2)
	if again.Email != "a@b.com" {
		t.Errorf("Storage leaked internal pointer, email: '%s'", again.Email)
	}

	if _, err := s.GetOrder(ctx, 42); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("Expected error: '%v', got: '%v'", ErrOrderNotFound, err)
	}
	if n := s.CountOrders(ctx); n != 3 {
		t.Errorf("Expected count: '3', got: '%d'", n)
	}
}

func TestMemoryStorage_UpdateOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()
	if err := s.AddOrder(ctx, newOrder(1, models.OrderStatusPending)); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		TestName        string
		ID              int64
		Mutate          OrderMutator
		ExpectedChanged bool
		ExpectedStatus  models.OrderStatus
		ExpectedError   error
	}{
		{
			TestName: "Error. Not found #1",
			ID:       7,
			Mutate: func(o *models.Order) (bool, error) {
				return true, nil
			},
			ExpectedError: ErrOrderNotFound,
		},
		{
			TestName: "Error. Mutator fails, nothing applied #2",
			ID:       1,
			Mutate: func(o *models.Order) (bool, error) {
				o.Status = models.OrderStatusApproved
				return true, errors.New("boom")
			},
			ExpectedError: errors.New("boom"),
		},
		{
			TestName: "Success. No changes #3",
			ID:       1,
			Mutate: func(o *models.Order) (bool, error) {
				o.Status = models.OrderStatusApproved
				return false, nil
			},
			ExpectedChanged: false,
			ExpectedStatus:  models.OrderStatusPending,
		},
		{
			TestName: "Success. Status changed #4",
			ID:       1,
			Mutate: func(o *models.Order) (bool, error) {
				o.Status = models.OrderStatusApproved
				return true, nil
			},
			ExpectedChanged: true,
			ExpectedStatus:  models.OrderStatusApproved,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			order, changed, err := s.UpdateOrder(ctx, tc.ID, tc.Mutate)
			if tc.ExpectedError != nil {
				if err == nil || err.Error() != tc.ExpectedError.Error() {
					t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
				}
				stored, getErr := s.GetOrder(ctx, 1)
				if getErr != nil || stored.Status != models.OrderStatusPending {
					t.Errorf("Order must stay pending after failed update")
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got: '%v'", err)
			}
			if changed != tc.ExpectedChanged {
				t.Errorf("Expected changed: '%v', got: '%v'", tc.ExpectedChanged, changed)
			}
			if order.Status != tc.ExpectedStatus {
				t.Errorf("Expected status: '%v', got: '%v'", tc.ExpectedStatus, order.Status)
			}
		})
	}
}

func TestMemoryStorage_DeleteOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()
	for _, id := range []int64{1, 2, 3} {
		if err := s.AddOrder(ctx, newOrder(id, models.OrderStatusPending)); err != nil {
			t.Fatal(err)
		}
	}

	removed, err := s.DeleteOrder(ctx, 2)
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if removed.ID != 2 || removed.StoredFileName != "file.png" {
		t.Errorf("Unexpected removed order: %+v", removed)
	}
	if _, err := s.GetOrder(ctx, 2); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("Expected error: '%v', got: '%v'", ErrOrderNotFound, err)
	}
	if _, err := s.DeleteOrder(ctx, 2); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("Expected error: '%v', got: '%v'", ErrOrderNotFound, err)
	}
	orders, _ := s.GetOrders(ctx)
	if len(orders) != 2 || orders[0].ID != 3 || orders[1].ID != 1 {
		t.Errorf("Unexpected orders after delete: %+v", orders)
	}
}

func TestMemoryStorage_Concurrent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	const workers = 50
	var wg sync.WaitGroup
	for i := 1; i <= workers; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_ = s.AddOrder(ctx, newOrder(id, models.OrderStatusPending))
			_, _, _ = s.UpdateOrder(ctx, id, func(o *models.Order) (bool, error) {
				o.Status = models.OrderStatusApproved
				return true, nil
			})
			_, _ = s.GetOrders(ctx)
		}(int64(i))
	}
	wg.Wait()

	orders, _ := s.GetOrders(ctx)
	if len(orders) != workers {
		t.Fatalf("Expected '%d' orders, got: '%d'", workers, len(orders))
	}
	for _, o := range orders {
		if o.Status != models.OrderStatusApproved {
			t.Errorf("Order %d not approved", o.ID)
		}
	}
}
