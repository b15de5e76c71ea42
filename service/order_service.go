package service

import (
	"time"

	"restaurant-orders-api/models"
	"restaurant-orders-api/statemachine"
	"restaurant-orders-api/store"
)

// OrderService owns every mutation of the order collection: submissions,
// status transitions, and deletions. Reads go through the repository.
type OrderService struct {
	store store.OrderStore
	now   func() time.Time
}

func NewOrderService(st store.OrderStore) *OrderService {
	return &OrderService{store: st, now: time.Now}
}

// WithClock overrides the service clock. Test hook.
func (s *OrderService) WithClock(now func() time.Time) *OrderService {
	s.now = now
	return s
}

// SubmitDineIn validates and persists a new dine-in order.
func (s *OrderService) SubmitDineIn(tableNumber int, items string) (*models.Order, error) {
	order, err := models.NewDineInOrder(tableNumber, items)
	if err != nil {
		return nil, err
	}
	return s.submit(order)
}

// SubmitTakeOut validates and persists a new take-out order.
func (s *OrderService) SubmitTakeOut(customerName, customerPhone, pickupTime, items string) (*models.Order, error) {
	order, err := models.NewTakeOutOrder(customerName, customerPhone, pickupTime, items)
	if err != nil {
		return nil, err
	}
	return s.submit(order)
}

func (s *OrderService) submit(order *models.Order) (*models.Order, error) {
	order.CreatedAt = s.now()
	if _, err := s.store.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Advance moves an order to the target status, stamping the matching
// timestamp. Re-requesting the status an order already holds is a no-op
// success and never re-stamps.
func (s *OrderService) Advance(id string, target models.OrderStatus) (*models.Order, error) {
	snapshot, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}
	order, ok := snapshot[id]
	if !ok {
		return nil, &models.NotFoundError{ID: id}
	}

	if order.Status == target {
		return &order, nil
	}

	if err := statemachine.CanTransition(order.Type, order.Status, target); err != nil {
		return nil, err
	}

	fields := map[string]any{"status": target}
	now := s.now()
	switch target {
	case models.StatusDone, models.StatusReady:
		if order.CompletedAt == nil {
			fields["completed_at"] = now
			order.CompletedAt = &now
		}
	case models.StatusPickedUp:
		if order.PickedUpAt == nil {
			fields["picked_up_at"] = now
			order.PickedUpAt = &now
		}
	}

	if err := s.store.Update(id, fields); err != nil {
		return nil, err
	}
	order.Status = target
	return &order, nil
}

// Remove deletes an order outright. Allowed from any status; this is not a
// transition and cannot be undone.
func (s *OrderService) Remove(id string) error {
	return s.store.Delete(id)
}
