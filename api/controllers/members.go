package controllers

import (
	"net/http"
	"time"

	"github.com/yuchialin/gymdesk-backend/api/responses"
	"github.com/yuchialin/gymdesk-backend/api/validators"
	"github.com/yuchialin/gymdesk-backend/internal/members"
	pkgerrors "github.com/yuchialin/gymdesk-backend/pkg/errors"
	"github.com/yuchialin/gymdesk-backend/pkg/logger"
)

const dateLayout = "2006-01-02"

type memberCreateRequest struct {
	ContactNumber   string `json:"contactNumber" validate:"required,max=20"`
	Name            string `json:"name" validate:"required,max=50"`
	Email           string `json:"email" validate:"required,email,max=100"`
	DateOfBirth     string `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	EmergencyName   string `json:"emergencyName" validate:"required,max=25"`
	EmergencyNumber string `json:"emergencyNumber" validate:"required,max=20"`
	Balance         *int   `json:"balance,omitempty" validate:"omitempty,min=0"`
	RewardPoints    *int   `json:"rewardPoints,omitempty" validate:"omitempty,min=0"`
}

type memberUpdateRequest struct {
	Name            *string `json:"name,omitempty" validate:"omitempty,min=1,max=50"`
	Email           *string `json:"email,omitempty" validate:"omitempty,email,max=100"`
	DateOfBirth     *string `json:"dateOfBirth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EmergencyName   *string `json:"emergencyName,omitempty" validate:"omitempty,min=1,max=25"`
	EmergencyNumber *string `json:"emergencyNumber,omitempty" validate:"omitempty,min=1,max=20"`
	Balance         *int    `json:"balance,omitempty" validate:"omitempty,min=0"`
	RewardPoints    *int    `json:"rewardPoints,omitempty" validate:"omitempty,min=0"`
}

// MemberCreate registers a new member.
func MemberCreate(svc members.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload memberCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dob, err := time.Parse(dateLayout, payload.DateOfBirth)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid dateOfBirth"))
			return
		}

		dto, err := svc.Create(r.Context(), members.CreateMemberInput{
			ContactNumber:   payload.ContactNumber,
			Name:            payload.Name,
			Email:           payload.Email,
			DateOfBirth:     dob,
			EmergencyName:   payload.EmergencyName,
			EmergencyNumber: payload.EmergencyNumber,
			Balance:         payload.Balance,
			RewardPoints:    payload.RewardPoints,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

// MemberGet returns one member by contact number.
func MemberGet(svc members.Service, logg *logger.Logger) http.HandlerFunc {
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

// MemberList returns every member.
func MemberList(svc members.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dtos, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dtos)
	}
}

// MemberUpdate patches mutable member fields.
func MemberUpdate(svc members.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactNumber, err := validators.RequireURLParam(r, "contactNumber")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload memberUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := members.UpdateMemberInput{
			Name:            payload.Name,
			Email:           payload.Email,
			EmergencyName:   payload.EmergencyName,
			EmergencyNumber: payload.EmergencyNumber,
			Balance:         payload.Balance,
			RewardPoints:    payload.RewardPoints,
		}
		if payload.DateOfBirth != nil {
			dob, err := time.Parse(dateLayout, *payload.DateOfBirth)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid dateOfBirth"))
				return
			}
			input.DateOfBirth = &dob
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

// MemberDelete removes the member and everything hanging off the contact
// number.
func MemberDelete(svc members.Service, logg *logger.Logger) http.HandlerFunc {
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

		responses.WriteMessage(w, http.StatusOK, "member deleted")
	}
}
