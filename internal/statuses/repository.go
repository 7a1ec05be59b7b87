package statuses

import (
	"context"

	"gorm.io/gorm"

	"github.com/yuchialin/gymdesk-backend/pkg/db/models"
)

// Repository wraps membership status persistence.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindActiveByContactNumber loads the member's active status, newest first in
// case historical rows were left active by older data.
func (r *Repository) FindActiveByContactNumber(ctx context.Context, contactNumber string) (*models.MembershipStatus, error) {
	var status models.MembershipStatus
	err := r.db.WithContext(ctx).
		Where("contact_number = ? AND is_active = ?", contactNumber, true).
		Order("id DESC").
		First(&status).
		Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// ListActive returns every active status.
func (r *Repository) ListActive(ctx context.Context) ([]models.MembershipStatus, error) {
	var result []models.MembershipStatus
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&result).
		Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts a new status row.
func (r *Repository) Create(ctx context.Context, status *models.MembershipStatus) error {
	return r.db.WithContext(ctx).Create(status).Error
}

// Save persists the full row.
func (r *Repository) Save(ctx context.Context, status *models.MembershipStatus) error {
	return r.db.WithContext(ctx).Save(status).Error
}

// DeleteByContactNumber removes every status row for the member and reports
// how many rows went away.
func (r *Repository) DeleteByContactNumber(ctx context.Context, contactNumber string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("contact_number = ?", contactNumber).
		Delete(&models.MembershipStatus{})
	return result.RowsAffected, result.Error
}
