package controllers

import (
	"net/http"

	"github.com/yuchialin/gymdesk-backend/api/responses"
	"github.com/yuchialin/gymdesk-backend/api/validators"
	"github.com/yuchialin/gymdesk-backend/internal/transactions"
	"github.com/yuchialin/gymdesk-backend/pkg/enums"
	"github.com/yuchialin/gymdesk-backend/pkg/logger"
)

type transactionCreateRequest struct {
	ContactNumber string   `json:"contactNumber" validate:"required,max=20"`
	ItemCode      string   `json:"itemCode" validate:"required,max=20"`
	Count         int      `json:"count" validate:"required,gt=0"`
	UnitPrice     *int     `json:"unitPrice,omitempty" validate:"omitempty,gt=0"`
	Discount      *float64 `json:"discount,omitempty" validate:"omitempty,gt=0,lte=1"`
	PaymentMethod string   `json:"paymentMethod" validate:"required,oneof=cash credit_card e_transfer reward_points"`
}

type transactionUpdateRequest struct {
	Count         *int     `json:"count,omitempty" validate:"omitempty,gt=0"`
	UnitPrice     *int     `json:"unitPrice,omitempty" validate:"omitempty,gt=0"`
	Discount      *float64 `json:"discount,omitempty" validate:"omitempty,gt=0,lte=1"`
	PaymentMethod *string  `json:"paymentMethod,omitempty" validate:"omitempty,oneof=cash credit_card e_transfer reward_points"`
}

// TransactionCreate records a sale against a member.
func TransactionCreate(svc transactions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload transactionCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithContactNumber(r.Context(), payload.ContactNumber)
		dto, err := svc.Create(ctx, transactions.CreateTransactionInput{
			ContactNumber: payload.ContactNumber,
			ItemCode:      payload.ItemCode,
			Count:         payload.Count,
			UnitPrice:     payload.UnitPrice,
			Discount:      payload.Discount,
			PaymentMethod: enums.PaymentMethod(payload.PaymentMethod),
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

// TransactionGet returns the member's purchase history, newest first.
func TransactionGet(svc transactions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactNumber, err := validators.RequireURLParam(r, "contactNumber")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithContactNumber(r.Context(), contactNumber)
		dtos, err := svc.ListByMember(ctx, contactNumber)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, dtos)
	}
}

// TransactionList returns every recorded sale.
func TransactionList(svc transactions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dtos, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dtos)
	}
}

// TransactionUpdate patches a recorded sale and recomputes the total when an
// amount field changes.
func TransactionUpdate(svc transactions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactNumber, err := validators.RequireURLParam(r, "contactNumber")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := validators.RequireURLParamInt64(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload transactionUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := transactions.UpdateTransactionInput{
			Count:     payload.Count,
			UnitPrice: payload.UnitPrice,
			Discount:  payload.Discount,
		}
		if payload.PaymentMethod != nil {
			method := enums.PaymentMethod(*payload.PaymentMethod)
			input.PaymentMethod = &method
		}

		ctx := logg.WithContactNumber(r.Context(), contactNumber)
		dto, err := svc.Update(ctx, contactNumber, id, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

// TransactionDelete removes one recorded sale.
func TransactionDelete(svc transactions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactNumber, err := validators.RequireURLParam(r, "contactNumber")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := validators.RequireURLParamInt64(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithContactNumber(r.Context(), contactNumber)
		if err := svc.Delete(ctx, contactNumber, id); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteMessage(w, http.StatusOK, "transaction record deleted")
	}
}
