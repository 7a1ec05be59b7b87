package members

import (
	"context"

	"gorm.io/gorm"

	"github.com/yuchialin/gymdesk-backend/pkg/db/models"
)

// Repository wraps member persistence on the shared GORM pool.
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

// FindByContactNumber loads one member without associations.
func (r *Repository) FindByContactNumber(ctx context.Context, contactNumber string) (*models.Member, error) {
	var member models.Member
	if err := r.db.WithContext(ctx).First(&member, "contact_number = ?", contactNumber).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// List returns every member, oldest first.
func (r *Repository) List(ctx context.Context) ([]models.Member, error) {
	var result []models.Member
	if err := r.db.WithContext(ctx).Order("created_at ASC, contact_number ASC").Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts a new member row.
func (r *Repository) Create(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// Update applies the provided column map to one member.
func (r *Repository) Update(ctx context.Context, contactNumber string, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.Member{}).
		Where("contact_number = ?", contactNumber).
		Updates(fields).
		Error
}

// DeleteCascade removes the member and every dependent row. Runs inside the
// caller's transaction so a partial delete never commits.
func (r *Repository) DeleteCascade(ctx context.Context, contactNumber string) error {
	tx := r.db.WithContext(ctx)
	for _, child := range []any{
		&models.TransactionRecord{},
		&models.CheckinRecord{},
		&models.MembershipStatus{},
		&models.MemberPhoto{},
	} {
		if err := tx.Where("contact_number = ?", contactNumber).Delete(child).Error; err != nil {
			return err
		}
	}
	return tx.Where("contact_number = ?", contactNumber).Delete(&models.Member{}).Error
}
