package store

import "restaurant-orders-api/models"

// OrderStore is the storage collaborator the core depends on. It is an
// append-friendly key-value collection keyed by an opaque order id.
// Update must merge the given fields into the record as a single atomic
// operation per key; that is the only concurrency guarantee the rest of
// the system relies on.
type OrderStore interface {
	// Create assigns a fresh opaque id, writes the record, and returns the id.
	Create(order *models.Order) (string, error)
	// Update merges fields into an existing record.
	Update(id string, fields map[string]any) error
	// Delete removes a record entirely.
	Delete(id string) error
	// ReadAll returns a point-in-time snapshot of the full collection.
	ReadAll() (map[string]models.Order, error)
}
