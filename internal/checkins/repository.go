package checkins

import (
	"context"

	"gorm.io/gorm"

	"github.com/yuchialin/gymdesk-backend/pkg/db/models"
)

// Repository wraps check-in record persistence.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// FindOpenByContactNumber loads the member's latest open record.
func (r *Repository) FindOpenByContactNumber(ctx context.Context, contactNumber string) (*models.CheckinRecord, error) {
	var record models.CheckinRecord
	err := r.db.WithContext(ctx).
		Where("contact_number = ? AND checked_out = ?", contactNumber, false).
		Order("id DESC").
		First(&record).
		Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByContactNumber returns the member's records, newest first.
func (r *Repository) ListByContactNumber(ctx context.Context, contactNumber string) ([]models.CheckinRecord, error) {
	var result []models.CheckinRecord
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
func (r *Repository) List(ctx context.Context) ([]models.CheckinRecord, error) {
	var result []models.CheckinRecord
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

// CountByContactNumber reports how many records the member has at all.
func (r *Repository) CountByContactNumber(ctx context.Context, contactNumber string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.CheckinRecord{}).
		Where("contact_number = ?", contactNumber).
		Count(&count).
		Error
	return count, err
}

// Create inserts a new record.
func (r *Repository) Create(ctx context.Context, record *models.CheckinRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// Save persists the full row.
func (r *Repository) Save(ctx context.Context, record *models.CheckinRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// DeleteByContactNumber removes every record for the member.
func (r *Repository) DeleteByContactNumber(ctx context.Context, contactNumber string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("contact_number = ?", contactNumber).
		Delete(&models.CheckinRecord{})
	return result.RowsAffected, result.Error
}
