package catalog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yuchialin/gymdesk-backend/pkg/db/models"
	pkgerrors "github.com/yuchialin/gymdesk-backend/pkg/errors"
)

// Service exposes catalog management for products and membership plans. Both
// kinds share one item-code namespace, so creates probe both tables.
type Service interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
	GetProduct(ctx context.Context, itemCode string) (*ProductDTO, error)
	ListProducts(ctx context.Context) ([]ProductDTO, error)
	UpdateProduct(ctx context.Context, itemCode string, input UpdateProductInput) (*ProductDTO, error)
	DeleteProduct(ctx context.Context, itemCode string) error

	CreatePlan(ctx context.Context, input CreatePlanInput) (*PlanDTO, error)
	GetPlan(ctx context.Context, itemCode string) (*PlanDTO, error)
	ListPlans(ctx context.Context) ([]PlanDTO, error)
	UpdatePlan(ctx context.Context, itemCode string, input UpdatePlanInput) (*PlanDTO, error)
	DeletePlan(ctx context.Context, itemCode string) error
}

type service struct {
	repo *Repository
}

// NewService constructs a catalog service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	if err := s.ensureCodeFree(ctx, input.ItemCode); err != nil {
		return nil, err
	}

	product := &models.Product{
		ItemCode:  input.ItemCode,
		SalePrice: input.SalePrice,
		Name:      input.Name,
		Image:     input.Image,
	}
	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create product")
	}
	return NewProductDTO(product), nil
}

func (s *service) GetProduct(ctx context.Context, itemCode string) (*ProductDTO, error) {
	product, err := s.findProduct(ctx, itemCode)
	if err != nil {
		return nil, err
	}
	return NewProductDTO(product), nil
}

func (s *service) ListProducts(ctx context.Context) ([]ProductDTO, error) {
	records, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}
	return NewProductDTOs(records), nil
}

func (s *service) UpdateProduct(ctx context.Context, itemCode string, input UpdateProductInput) (*ProductDTO, error) {
	if _, err := s.findProduct(ctx, itemCode); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if input.SalePrice != nil {
		fields["sale_price"] = *input.SalePrice
	}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if len(input.Image) > 0 {
		fields["image"] = input.Image
	}
	if len(fields) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no fields to update")
	}

	if err := s.repo.UpdateProduct(ctx, itemCode, fields); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update product")
	}
	return s.GetProduct(ctx, itemCode)
}

// DeleteProduct removes the catalog row. Historical transactions keep their
// denormalized price and count, so no cascade here.
func (s *service) DeleteProduct(ctx context.Context, itemCode string) error {
	if _, err := s.findProduct(ctx, itemCode); err != nil {
		return err
	}
	if err := s.repo.DeleteProduct(ctx, itemCode); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete product")
	}
	return nil
}

func (s *service) CreatePlan(ctx context.Context, input CreatePlanInput) (*PlanDTO, error) {
	if err := s.ensureCodeFree(ctx, input.ItemCode); err != nil {
		return nil, err
	}

	plan := &models.MembershipPlan{
		ItemCode:       input.ItemCode,
		SalePrice:      input.SalePrice,
		PlanType:       input.PlanType,
		DurationMonths: input.DurationMonths,
	}
	if err := s.repo.CreatePlan(ctx, plan); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create plan")
	}
	return NewPlanDTO(plan), nil
}

func (s *service) GetPlan(ctx context.Context, itemCode string) (*PlanDTO, error) {
	plan, err := s.findPlan(ctx, itemCode)
	if err != nil {
		return nil, err
	}
	return NewPlanDTO(plan), nil
}

func (s *service) ListPlans(ctx context.Context) ([]PlanDTO, error) {
	records, err := s.repo.ListPlans(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list plans")
	}
	return NewPlanDTOs(records), nil
}

func (s *service) UpdatePlan(ctx context.Context, itemCode string, input UpdatePlanInput) (*PlanDTO, error) {
	if _, err := s.findPlan(ctx, itemCode); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if input.SalePrice != nil {
		fields["sale_price"] = *input.SalePrice
	}
	if input.PlanType != nil {
		fields["plan_type"] = *input.PlanType
	}
	if input.DurationMonths != nil {
		fields["duration_months"] = *input.DurationMonths
	}
	if len(fields) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no fields to update")
	}

	if err := s.repo.UpdatePlan(ctx, itemCode, fields); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update plan")
	}
	return s.GetPlan(ctx, itemCode)
}

func (s *service) DeletePlan(ctx context.Context, itemCode string) error {
	if _, err := s.findPlan(ctx, itemCode); err != nil {
		return err
	}
	if err := s.repo.DeletePlan(ctx, itemCode); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete plan")
	}
	return nil
}

func (s *service) ensureCodeFree(ctx context.Context, itemCode string) error {
	if _, _, err := s.repo.FindItemKind(ctx, itemCode); err == nil {
		return pkgerrors.New(pkgerrors.CodeConflict, "item code already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check item code")
	}
	return nil
}

func (s *service) findProduct(ctx context.Context, itemCode string) (*models.Product, error) {
	product, err := s.repo.FindProduct(ctx, itemCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}
	return product, nil
}

func (s *service) findPlan(ctx context.Context, itemCode string) (*models.MembershipPlan, error) {
	plan, err := s.repo.FindPlan(ctx, itemCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "membership plan not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load plan")
	}
	return plan, nil
}
