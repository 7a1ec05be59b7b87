package controllers

import (
	"io"
	"net/http"

	"github.com/yuchialin/gymdesk-backend/api/responses"
	"github.com/yuchialin/gymdesk-backend/api/validators"
	"github.com/yuchialin/gymdesk-backend/internal/photos"
	pkgerrors "github.com/yuchialin/gymdesk-backend/pkg/errors"
	"github.com/yuchialin/gymdesk-backend/pkg/logger"
)

// maxPhotoBytes caps a single upload at 8 MiB.
const maxPhotoBytes = 8 << 20

func readPhotoForm(r *http.Request) ([]byte, *pkgerrors.Error) {
	if err := r.ParseMultipartForm(maxPhotoBytes); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "request must be multipart form data")
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "photo file is required")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes+1))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "read photo file")
	}
	if len(data) > maxPhotoBytes {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "photo exceeds the size limit")
	}
	return data, nil
}

// PhotoCreate uploads a new active photo for a member. The previous photo is
// kept as inactive history.
func PhotoCreate(svc photos.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, formErr := readPhotoForm(r)
		if formErr != nil {
			responses.WriteError(r.Context(), logg, w, formErr)
			return
		}

		contactNumber := r.FormValue("contactNumber")
		if contactNumber == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "contactNumber is required"))
			return
		}

		ctx := logg.WithContactNumber(r.Context(), contactNumber)
		dto, err := svc.Create(ctx, contactNumber, data)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

// PhotoGet returns the member's active photo with its payload.
func PhotoGet(svc photos.Service, logg *logger.Logger) http.HandlerFunc {
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

// PhotoList returns photo metadata for every stored photo, payloads excluded.
func PhotoList(svc photos.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dtos, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dtos)
	}
}

// PhotoUpdate replaces the bytes of the active photo in place.
func PhotoUpdate(svc photos.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactNumber, err := validators.RequireURLParam(r, "contactNumber")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		data, formErr := readPhotoForm(r)
		if formErr != nil {
			responses.WriteError(r.Context(), logg, w, formErr)
			return
		}

		ctx := logg.WithContactNumber(r.Context(), contactNumber)
		dto, err := svc.Update(ctx, contactNumber, data)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

// PhotoDelete removes the member's whole photo history.
func PhotoDelete(svc photos.Service, logg *logger.Logger) http.HandlerFunc {
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

		responses.WriteMessage(w, http.StatusOK, "member photo deleted")
	}
}
