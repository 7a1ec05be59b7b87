package controllers

import (
	"net/http"

	"github.com/yuchialin/gymdesk-backend/api/responses"
	"github.com/yuchialin/gymdesk-backend/api/validators"
	"github.com/yuchialin/gymdesk-backend/internal/catalog"
	"github.com/yuchialin/gymdesk-backend/pkg/logger"
)

type planCreateRequest struct {
	ItemCode       string `json:"itemCode" validate:"required,max=20"`
	SalePrice      int    `json:"salePrice" validate:"required,gt=0"`
	PlanType       string `json:"planType" validate:"required,max=50"`
	DurationMonths int    `json:"durationMonths" validate:"required,gt=0"`
}

type planUpdateRequest struct {
	SalePrice      *int    `json:"salePrice,omitempty" validate:"omitempty,gt=0"`
	PlanType       *string `json:"planType,omitempty" validate:"omitempty,min=1,max=50"`
	DurationMonths *int    `json:"durationMonths,omitempty" validate:"omitempty,gt=0"`
}

// PlanCreate adds a membership plan to the catalog.
func PlanCreate(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload planCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.CreatePlan(r.Context(), catalog.CreatePlanInput{
			ItemCode:       payload.ItemCode,
			SalePrice:      payload.SalePrice,
			PlanType:       payload.PlanType,
			DurationMonths: payload.DurationMonths,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

// PlanGet returns one membership plan by item code.
func PlanGet(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemCode, err := validators.RequireURLParam(r, "itemCode")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithItemCode(r.Context(), itemCode)
		dto, err := svc.GetPlan(ctx, itemCode)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

// PlanList returns every membership plan.
func PlanList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dtos, err := svc.ListPlans(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dtos)
	}
}

// PlanUpdate patches mutable plan fields.
func PlanUpdate(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemCode, err := validators.RequireURLParam(r, "itemCode")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload planUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithItemCode(r.Context(), itemCode)
		dto, err := svc.UpdatePlan(ctx, itemCode, catalog.UpdatePlanInput{
			SalePrice:      payload.SalePrice,
			PlanType:       payload.PlanType,
			DurationMonths: payload.DurationMonths,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

// PlanDelete removes one membership plan.
func PlanDelete(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemCode, err := validators.RequireURLParam(r, "itemCode")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithItemCode(r.Context(), itemCode)
		if err := svc.DeletePlan(ctx, itemCode); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteMessage(w, http.StatusOK, "membership plan deleted")
	}
}
