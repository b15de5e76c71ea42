package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"restaurant-orders-api/models"
)

// MemoryStore is a mutex-guarded in-memory OrderStore. It backs the unit
// tests and honors the same merge-update semantics as the database store.
type MemoryStore struct {
	mu     sync.RWMutex
	orders map[string]models.Order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{orders: make(map[string]models.Order)}
}

func (s *MemoryStore) Create(order *models.Order) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = uuid.NewString()
	s.orders[order.ID] = *order
	return order.ID, nil
}

func (s *MemoryStore) Update(id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return &models.NotFoundError{ID: id}
	}
	for field, value := range fields {
		if err := applyField(&order, field, value); err != nil {
			return &models.StoreUnavailableError{Op: "update", Err: err}
		}
	}
	s.orders[id] = order
	return nil
}

func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[id]; !ok {
		return &models.NotFoundError{ID: id}
	}
	delete(s.orders, id)
	return nil
}

func (s *MemoryStore) ReadAll() (map[string]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[string]models.Order, len(s.orders))
	for id, order := range s.orders {
		snapshot[id] = order
	}
	return snapshot, nil
}

func applyField(order *models.Order, field string, value any) error {
	switch field {
	case "status":
		status, ok := value.(models.OrderStatus)
		if !ok {
			return fmt.Errorf("field status: unexpected value %v", value)
		}
		order.Status = status
	case "completed_at":
		ts, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("field completed_at: unexpected value %v", value)
		}
		order.CompletedAt = &ts
	case "picked_up_at":
		ts, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("field picked_up_at: unexpected value %v", value)
		}
		order.PickedUpAt = &ts
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}
