package controllers

import (
	"net/http"

	"github.com/yuchialin/gymdesk-backend/api/responses"
	"github.com/yuchialin/gymdesk-backend/api/validators"
	"github.com/yuchialin/gymdesk-backend/internal/checkins"
	"github.com/yuchialin/gymdesk-backend/pkg/logger"
)

type checkinCreateRequest struct {
	ContactNumber string `json:"contactNumber" validate:"required,max=20"`
}

// CheckinCreate opens a visit for a member.
func CheckinCreate(svc checkins.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload checkinCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithContactNumber(r.Context(), payload.ContactNumber)
		dto, err := svc.Create(ctx, payload.ContactNumber)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

// CheckinCheckOut closes the member's open visit.
func CheckinCheckOut(svc checkins.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactNumber, err := validators.RequireURLParam(r, "contactNumber")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithContactNumber(r.Context(), contactNumber)
		dto, err := svc.CheckOut(ctx, contactNumber)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

// CheckinGet returns the member's visit history, newest first.
func CheckinGet(svc checkins.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactNumber, err := validators.RequireURLParam(r, "contactNumber")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithContactNumber(r.Context(), contactNumber)
		dtos, err := svc.Get(ctx, contactNumber)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, dtos)
	}
}

// CheckinList returns every visit across all members.
func CheckinList(svc checkins.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dtos, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dtos)
	}
}

// CheckinDelete removes the member's whole visit history.
func CheckinDelete(svc checkins.Service, logg *logger.Logger) http.HandlerFunc {
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

		responses.WriteMessage(w, http.StatusOK, "check-in records deleted")
	}
}
