package catalog

import (
	"encoding/base64"

	"github.com/yuchialin/gymdesk-backend/pkg/db/models"
)

// ProductDTO is the catalog product payload returned to clients. Image bytes
// travel base64-encoded.
type ProductDTO struct {
	ItemCode  string  `json:"itemCode"`
	SalePrice int     `json:"salePrice"`
	Name      string  `json:"name"`
	Image     *string `json:"image,omitempty"`
}

// PlanDTO is the membership plan payload returned to clients.
type PlanDTO struct {
	ItemCode       string `json:"itemCode"`
	SalePrice      int    `json:"salePrice"`
	PlanType       string `json:"planType"`
	DurationMonths int    `json:"durationMonths"`
}

// CreateProductInput holds the validated payload to add a product.
type CreateProductInput struct {
	ItemCode  string
	SalePrice int
	Name      string
	Image     []byte
}

// UpdateProductInput holds optional mutation values for a product.
type UpdateProductInput struct {
	SalePrice *int
	Name      *string
	Image     []byte
}

// CreatePlanInput holds the validated payload to add a membership plan.
type CreatePlanInput struct {
	ItemCode       string
	SalePrice      int
	PlanType       string
	DurationMonths int
}

// UpdatePlanInput holds optional mutation values for a membership plan.
type UpdatePlanInput struct {
	SalePrice      *int
	PlanType       *string
	DurationMonths *int
}

func NewProductDTO(product *models.Product) *ProductDTO {
	dto := &ProductDTO{
		ItemCode:  product.ItemCode,
		SalePrice: product.SalePrice,
		Name:      product.Name,
	}
	if len(product.Image) > 0 {
		encoded := base64.StdEncoding.EncodeToString(product.Image)
		dto.Image = &encoded
	}
	return dto
}

func NewProductDTOs(records []models.Product) []ProductDTO {
	result := make([]ProductDTO, len(records))
	for i := range records {
		result[i] = *NewProductDTO(&records[i])
	}
	return result
}

func NewPlanDTO(plan *models.MembershipPlan) *PlanDTO {
	return &PlanDTO{
		ItemCode:       plan.ItemCode,
		SalePrice:      plan.SalePrice,
		PlanType:       plan.PlanType,
		DurationMonths: plan.DurationMonths,
	}
}

func NewPlanDTOs(records []models.MembershipPlan) []PlanDTO {
	result := make([]PlanDTO, len(records))
	for i := range records {
		result[i] = *NewPlanDTO(&records[i])
	}
	return result
}
