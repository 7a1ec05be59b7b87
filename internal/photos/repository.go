package photos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yuchialin/gymdesk-backend/pkg/db/models"
)

// Repository wraps member photo persistence.
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

// FindActiveByContactNumber loads the member's active photo.
func (r *Repository) FindActiveByContactNumber(ctx context.Context, contactNumber string) (*models.MemberPhoto, error) {
	var photo models.MemberPhoto
	err := r.db.WithContext(ctx).
		Where("contact_number = ? AND is_active = ?", contactNumber, true).
		First(&photo).
		Error
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// List returns every photo row, active and historical.
func (r *Repository) List(ctx context.Context) ([]models.MemberPhoto, error) {
	var result []models.MemberPhoto
	if err := r.db.WithContext(ctx).Order("photo_name ASC").Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts a new photo row.
func (r *Repository) Create(ctx context.Context, photo *models.MemberPhoto) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

// DeactivateByContactNumber clears the active flag on the member's photos.
func (r *Repository) DeactivateByContactNumber(ctx context.Context, contactNumber string) error {
	return r.db.WithContext(ctx).
		Model(&models.MemberPhoto{}).
		Where("contact_number = ? AND is_active = ?", contactNumber, true).
		Update("is_active", false).
		Error
}

// ReplaceData swaps the image bytes of one photo row in place.
func (r *Repository) ReplaceData(ctx context.Context, photoName string, data []byte) error {
	return r.db.WithContext(ctx).
		Model(&models.MemberPhoto{}).
		Where("photo_name = ?", photoName).
		Update("data", data).
		Error
}

// DeleteByContactNumber removes every photo row for the member.
func (r *Repository) DeleteByContactNumber(ctx context.Context, contactNumber string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("contact_number = ?", contactNumber).
		Delete(&models.MemberPhoto{})
	return result.RowsAffected, result.Error
}
