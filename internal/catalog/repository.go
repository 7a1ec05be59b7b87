package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yuchialin/gymdesk-backend/pkg/db/models"
)

// ItemKind distinguishes the two catalog tables sharing the item-code
// namespace.
type ItemKind string

const (
	ItemKindProduct        ItemKind = "product"
	ItemKindMembershipPlan ItemKind = "membership_plan"
	ItemKindUnknown        ItemKind = ""
)

// Repository wraps product and membership plan persistence.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindProduct loads one product by item code.
func (r *Repository) FindProduct(ctx context.Context, itemCode string) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "item_code = ?", itemCode).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// ListProducts returns every product ordered by item code.
func (r *Repository) ListProducts(ctx context.Context) ([]models.Product, error) {
	var result []models.Product
	if err := r.db.WithContext(ctx).Order("item_code ASC").Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

// CreateProduct inserts a new product row.
func (r *Repository) CreateProduct(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// UpdateProduct applies the provided column map to one product.
func (r *Repository) UpdateProduct(ctx context.Context, itemCode string, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("item_code = ?", itemCode).
		Updates(fields).
		Error
}

// DeleteProduct removes one product row.
func (r *Repository) DeleteProduct(ctx context.Context, itemCode string) error {
	return r.db.WithContext(ctx).Where("item_code = ?", itemCode).Delete(&models.Product{}).Error
}

// FindPlan loads one membership plan by item code.
func (r *Repository) FindPlan(ctx context.Context, itemCode string) (*models.MembershipPlan, error) {
	var plan models.MembershipPlan
	if err := r.db.WithContext(ctx).First(&plan, "item_code = ?", itemCode).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// ListPlans returns every membership plan ordered by item code.
func (r *Repository) ListPlans(ctx context.Context) ([]models.MembershipPlan, error) {
	var result []models.MembershipPlan
	if err := r.db.WithContext(ctx).Order("item_code ASC").Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

// CreatePlan inserts a new membership plan row.
func (r *Repository) CreatePlan(ctx context.Context, plan *models.MembershipPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

// UpdatePlan applies the provided column map to one membership plan.
func (r *Repository) UpdatePlan(ctx context.Context, itemCode string, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.MembershipPlan{}).
		Where("item_code = ?", itemCode).
		Updates(fields).
		Error
}

// DeletePlan removes one membership plan row.
func (r *Repository) DeletePlan(ctx context.Context, itemCode string) error {
	return r.db.WithContext(ctx).Where("item_code = ?", itemCode).Delete(&models.MembershipPlan{}).Error
}

// FindItemKind probes both catalog tables for the item code. Transactions use
// this because a sale can reference either kind.
func (r *Repository) FindItemKind(ctx context.Context, itemCode string) (ItemKind, int, error) {
	if product, err := r.FindProduct(ctx, itemCode); err == nil {
		return ItemKindProduct, product.SalePrice, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ItemKindUnknown, 0, err
	}

	if plan, err := r.FindPlan(ctx, itemCode); err == nil {
		return ItemKindMembershipPlan, plan.SalePrice, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ItemKindUnknown, 0, err
	}

	return ItemKindUnknown, 0, gorm.ErrRecordNotFound
}
