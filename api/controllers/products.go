package controllers

import (
	"encoding/base64"
	"net/http"

	"github.com/yuchialin/gymdesk-backend/api/responses"
	"github.com/yuchialin/gymdesk-backend/api/validators"
	"github.com/yuchialin/gymdesk-backend/internal/catalog"
	pkgerrors "github.com/yuchialin/gymdesk-backend/pkg/errors"
	"github.com/yuchialin/gymdesk-backend/pkg/logger"
)

type productCreateRequest struct {
	ItemCode  string  `json:"itemCode" validate:"required,max=20"`
	SalePrice int     `json:"salePrice" validate:"required,gt=0"`
	Name      string  `json:"name" validate:"required,max=100"`
	Image     *string `json:"image,omitempty"`
}

type productUpdateRequest struct {
	SalePrice *int    `json:"salePrice,omitempty" validate:"omitempty,gt=0"`
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Image     *string `json:"image,omitempty"`
}

func decodeImage(encoded *string) ([]byte, *pkgerrors.Error) {
	if encoded == nil || *encoded == "" {
		return nil, nil
	}
	data, err := base64.StdEncoding.DecodeString(*encoded)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "image must be base64 encoded")
	}
	return data, nil
}

// ProductCreate adds a catalog product.
func ProductCreate(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload productCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		image, imgErr := decodeImage(payload.Image)
		if imgErr != nil {
			responses.WriteError(r.Context(), logg, w, imgErr)
			return
		}

		dto, err := svc.CreateProduct(r.Context(), catalog.CreateProductInput{
			ItemCode:  payload.ItemCode,
			SalePrice: payload.SalePrice,
			Name:      payload.Name,
			Image:     image,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

// ProductGet returns one product by item code.
func ProductGet(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemCode, err := validators.RequireURLParam(r, "itemCode")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithItemCode(r.Context(), itemCode)
		dto, err := svc.GetProduct(ctx, itemCode)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

// ProductList returns the whole product catalog.
func ProductList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dtos, err := svc.ListProducts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dtos)
	}
}

// ProductUpdate patches mutable product fields.
func ProductUpdate(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemCode, err := validators.RequireURLParam(r, "itemCode")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload productUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		image, imgErr := decodeImage(payload.Image)
		if imgErr != nil {
			responses.WriteError(r.Context(), logg, w, imgErr)
			return
		}

		ctx := logg.WithItemCode(r.Context(), itemCode)
		dto, err := svc.UpdateProduct(ctx, itemCode, catalog.UpdateProductInput{
			SalePrice: payload.SalePrice,
			Name:      payload.Name,
			Image:     image,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

// ProductDelete removes one product.
func ProductDelete(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemCode, err := validators.RequireURLParam(r, "itemCode")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithItemCode(r.Context(), itemCode)
		if err := svc.DeleteProduct(ctx, itemCode); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteMessage(w, http.StatusOK, "product deleted")
	}
}
