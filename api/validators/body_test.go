package validators

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	pkgerrors "github.com/yuchialin/gymdesk-backend/pkg/errors"
)

type samplePayload struct {
	ContactNumber string  `json:"contactNumber" validate:"required,max=20"`
	Email         string  `json:"email" validate:"required,email"`
	StartDate     string  `json:"startDate" validate:"required,datetime=2006-01-02"`
	Discount      float64 `json:"discount" validate:"omitempty,gt=0,lte=1"`
}

func newBodyRequest(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func TestDecodeJSONBodyAcceptsValidPayload(t *testing.T) {
	var dest samplePayload
	body := `{"contactNumber":"0912345678","email":"a@b.com","startDate":"2025-03-01","discount":0.9}`
	if err := DecodeJSONBody(newBodyRequest(body), &dest); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dest.ContactNumber != "0912345678" {
		t.Fatalf("unexpected decode result %+v", dest)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	var dest samplePayload
	body := `{"contactNumber":"0912345678","email":"a@b.com","startDate":"2025-03-01","bogus":true}`
	err := DecodeJSONBody(newBodyRequest(body), &dest)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONBodyReportsFieldMessages(t *testing.T) {
	var dest samplePayload
	body := `{"contactNumber":"","email":"nope","startDate":"03/01/2025","discount":1.5}`
	err := DecodeJSONBody(newBodyRequest(body), &dest)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}

	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details, got %T", typed.Details())
	}
	if details["contactNumber"] != "is required" {
		t.Fatalf("unexpected contactNumber message %q", details["contactNumber"])
	}
	if details["email"] != "must be a valid email" {
		t.Fatalf("unexpected email message %q", details["email"])
	}
	if !strings.Contains(details["startDate"], "2006-01-02") {
		t.Fatalf("unexpected startDate message %q", details["startDate"])
	}
	if details["discount"] != "must be at most 1" {
		t.Fatalf("unexpected discount message %q", details["discount"])
	}
}

func TestRequireURLParam(t *testing.T) {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("contactNumber", "0912345678")
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))

	got, err := RequireURLParam(r, "contactNumber")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "0912345678" {
		t.Fatalf("unexpected value %q", got)
	}

	if _, err := RequireURLParam(r, "missing"); err == nil {
		t.Fatal("expected error for missing param")
	}
}

func TestRequireURLParamInt64(t *testing.T) {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "42")
	rctx.URLParams.Add("bad", "abc")
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))

	got, err := RequireURLParamInt64(r, "id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Fatalf("unexpected value %d", got)
	}

	if _, err := RequireURLParamInt64(r, "bad"); err == nil {
		t.Fatal("expected error for non-numeric param")
	}
}
