package controllers

import (
	"net/http"
	"time"

	"github.com/yuchialin/gymdesk-backend/api/responses"
	"github.com/yuchialin/gymdesk-backend/api/validators"
	"github.com/yuchialin/gymdesk-backend/internal/statuses"
	pkgerrors "github.com/yuchialin/gymdesk-backend/pkg/errors"
	"github.com/yuchialin/gymdesk-backend/pkg/logger"
)

type statusCreateRequest struct {
	ContactNumber string `json:"contactNumber" validate:"required,max=20"`
	StartDate     string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate       string `json:"endDate" validate:"required,datetime=2006-01-02"`
}

type statusUpdateRequest struct {
	StartDate *string `json:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

// StatusCreate opens a membership window for a member.
func StatusCreate(svc statuses.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload statusCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		start, err := time.Parse(dateLayout, payload.StartDate)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid startDate"))
			return
		}
		end, err := time.Parse(dateLayout, payload.EndDate)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid endDate"))
			return
		}

		ctx := logg.WithContactNumber(r.Context(), payload.ContactNumber)
		dto, err := svc.Create(ctx, statuses.CreateStatusInput{
			ContactNumber: payload.ContactNumber,
			StartDate:     start,
			EndDate:       end,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

// StatusGet returns the member's active membership status.
func StatusGet(svc statuses.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactNumber, err := validators.RequireURLParam(r, "contactNumber")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithContactNumber(r.Context(), contactNumber)
		dto, err := svc.Get(ctx, contactNumber)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

// StatusList returns every active membership status.
func StatusList(svc statuses.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dtos, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dtos)
	}
}

// StatusUpdate patches the active membership status.
func StatusUpdate(svc statuses.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactNumber, err := validators.RequireURLParam(r, "contactNumber")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload statusUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := statuses.UpdateStatusInput{IsActive: payload.IsActive}
		if payload.StartDate != nil {
			start, err := time.Parse(dateLayout, *payload.StartDate)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid startDate"))
				return
			}
			input.StartDate = &start
		}
		if payload.EndDate != nil {
			end, err := time.Parse(dateLayout, *payload.EndDate)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid endDate"))
				return
			}
			input.EndDate = &end
		}

		ctx := logg.WithContactNumber(r.Context(), contactNumber)
		dto, err := svc.Update(ctx, contactNumber, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

// StatusDelete removes every status row for the member.
func StatusDelete(svc statuses.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactNumber, err := validators.RequireURLParam(r, "contactNumber")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithContactNumber(r.Context(), contactNumber)
		if err := svc.Delete(ctx, contactNumber); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteMessage(w, http.StatusOK, "membership status deleted")
	}
}
