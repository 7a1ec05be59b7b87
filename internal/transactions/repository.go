package transactions

import (
	"context"

	"gorm.io/gorm"

	"github.com/yuchialin/gymdesk-backend/pkg/db/models"
)

// Repository wraps transaction record persistence.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID loads one record scoped to the member.
func (r *Repository) FindByID(ctx context.Context, contactNumber string, id int64) (*models.TransactionRecord, error) {
	var record models.TransactionRecord
	err := r.db.WithContext(ctx).
		Where("contact_number = ? AND id = ?", contactNumber, id).
		First(&record).
		Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByContactNumber returns the member's records, newest first.
func (r *Repository) ListByContactNumber(ctx context.Context, contactNumber string) ([]models.TransactionRecord, error) {
	var result []models.TransactionRecord
	err := r.db.WithContext(ctx).
		Where("contact_number = ?", contactNumber).
		Order("id DESC").
		Find(&result).
		Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

// List returns every record, newest first.
func (r *Repository) List(ctx context.Context) ([]models.TransactionRecord, error) {
	var result []models.TransactionRecord
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts a new record.
func (r *Repository) Create(ctx context.Context, record *models.TransactionRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// Save persists the full row.
func (r *Repository) Save(ctx context.Context, record *models.TransactionRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// Delete removes one record scoped to the member.
func (r *Repository) Delete(ctx context.Context, contactNumber string, id int64) error {
	return r.db.WithContext(ctx).
		Where("contact_number = ? AND id = ?", contactNumber, id).
		Delete(&models.TransactionRecord{}).
		Error
}
