package store

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"restaurant-orders-api/models"
)

// GormStore persists orders in a gorm-managed database. Update and Delete
// each issue a single statement, which gives the per-key atomic merge the
// OrderStore contract requires.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Create(order *models.Order) (string, error) {
	order.ID = uuid.NewString()
	if err := s.db.Create(order).Error; err != nil {
		return "", &models.StoreUnavailableError{Op: "create", Err: err}
	}
	return order.ID, nil
}

func (s *GormStore) Update(id string, fields map[string]any) error {
	res := s.db.Model(&models.Order{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return &models.StoreUnavailableError{Op: "update", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return &models.NotFoundError{ID: id}
	}
	return nil
}

func (s *GormStore) Delete(id string) error {
	res := s.db.Where("id = ?", id).Delete(&models.Order{})
	if res.Error != nil {
		return &models.StoreUnavailableError{Op: "delete", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return &models.NotFoundError{ID: id}
	}
	return nil
}

func (s *GormStore) ReadAll() (map[string]models.Order, error) {
	var orders []models.Order
	if err := s.db.Find(&orders).Error; err != nil {
		return nil, &models.StoreUnavailableError{Op: "read_all", Err: err}
	}
	snapshot := make(map[string]models.Order, len(orders))
	for _, o := range orders {
		snapshot[o.ID] = o
	}
	return snapshot, nil
}
