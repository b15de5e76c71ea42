package repository

import (
	"sort"
	"time"

	"restaurant-orders-api/models"
	"restaurant-orders-api/store"
)

// Filter narrows a listing. Nil fields match everything; From/To bound the
// calendar date of CreatedAt, inclusive on both ends.
type Filter struct {
	Type   *models.OrderType
	Status *models.OrderStatus
	From   *time.Time
	To     *time.Time
}

// Repository is the read side: it filters, sorts, and windows point-in-time
// snapshots of the store. It never mutates anything.
type Repository struct {
	store store.OrderStore
}

func NewRepository(st store.OrderStore) *Repository {
	return &Repository{store: st}
}

// Snapshot returns all orders ordered by creation time ascending.
// Timestamp ties resolve by id, so repeated reads are stable.
func (r *Repository) Snapshot() ([]models.Order, error) {
	snapshot, err := r.store.ReadAll()
	if err != nil {
		return nil, err
	}
	orders := make([]models.Order, 0, len(snapshot))
	for _, o := range snapshot {
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.Before(orders[j].CreatedAt)
		}
		return orders[i].ID < orders[j].ID
	})
	return orders, nil
}

// List returns orders matching every provided predicate, oldest first.
func (r *Repository) List(f Filter) ([]models.Order, error) {
	orders, err := r.Snapshot()
	if err != nil {
		return nil, err
	}
	matched := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if f.Type != nil && o.Type != *f.Type {
			continue
		}
		if f.Status != nil && o.Status != *f.Status {
			continue
		}
		if !inDateRange(o.CreatedAt, f.From, f.To) {
			continue
		}
		matched = append(matched, o)
	}
	return matched, nil
}

// Recent returns the n most recently created orders of a type, newest first.
// The window size is a caller policy, never fixed here.
func (r *Repository) Recent(orderType models.OrderType, n int) ([]models.Order, error) {
	orders, err := r.List(Filter{Type: &orderType})
	if err != nil {
		return nil, err
	}
	reverse(orders)
	return limitTo(orders, n), nil
}

// Pending returns the work queue for a type: pending orders, oldest first.
func (r *Repository) Pending(orderType models.OrderType) ([]models.Order, error) {
	return r.byStatus(orderType, models.StatusPending)
}

// Ready returns take-out orders awaiting pickup, oldest first.
func (r *Repository) Ready(orderType models.OrderType) ([]models.Order, error) {
	return r.byStatus(orderType, models.StatusReady)
}

// Completed returns terminal orders of a type (Done for dine-in, Picked-Up
// for take-out), most recently completed first, capped at limit when > 0.
func (r *Repository) Completed(orderType models.OrderType, limit int) ([]models.Order, error) {
	terminal := models.StatusDone
	if orderType == models.TypeTakeOut {
		terminal = models.StatusPickedUp
	}
	orders, err := r.byStatus(orderType, terminal)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		ti, tj := orders[i].TerminalAt(), orders[j].TerminalAt()
		if ti == nil || tj == nil {
			return tj == nil && ti != nil
		}
		return ti.After(*tj)
	})
	return limitTo(orders, limit), nil
}

func (r *Repository) byStatus(orderType models.OrderType, status models.OrderStatus) ([]models.Order, error) {
	return r.List(Filter{Type: &orderType, Status: &status})
}

func inDateRange(ts time.Time, from, to *time.Time) bool {
	day := dateOnly(ts)
	if from != nil && day.Before(dateOnly(*from)) {
		return false
	}
	if to != nil && day.After(dateOnly(*to)) {
		return false
	}
	return true
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func reverse(orders []models.Order) {
	for i, j := 0, len(orders)-1; i < j; i, j = i+1, j-1 {
		orders[i], orders[j] = orders[j], orders[i]
	}
}

func limitTo(orders []models.Order, n int) []models.Order {
	if n > 0 && len(orders) > n {
		return orders[:n]
	}
	return orders
}
