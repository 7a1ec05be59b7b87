package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/yuchialin/gymdesk-backend/internal/members"
	pkgerrors "github.com/yuchialin/gymdesk-backend/pkg/errors"
	"github.com/yuchialin/gymdesk-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func withRouteParams(req *http.Request, pairs ...string) *http.Request {
	routeCtx := chi.NewRouteContext()
	for i := 0; i+1 < len(pairs); i += 2 {
		routeCtx.URLParams.Add(pairs[i], pairs[i+1])
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

type stubMemberService struct {
	dto     *members.MemberDTO
	dtos    []members.MemberDTO
	err     error
	created members.CreateMemberInput
	updated members.UpdateMemberInput
}

func (s *stubMemberService) Create(_ context.Context, input members.CreateMemberInput) (*members.MemberDTO, error) {
	s.created = input
	return s.dto, s.err
}

func (s *stubMemberService) Get(_ context.Context, _ string) (*members.MemberDTO, error) {
	return s.dto, s.err
}

func (s *stubMemberService) List(_ context.Context) ([]members.MemberDTO, error) {
	return s.dtos, s.err
}

func (s *stubMemberService) Update(_ context.Context, _ string, input members.UpdateMemberInput) (*members.MemberDTO, error) {
	s.updated = input
	return s.dto, s.err
}

func (s *stubMemberService) Delete(_ context.Context, _ string) error {
	return s.err
}

func TestMemberCreateSuccess(t *testing.T) {
	svc := &stubMemberService{dto: &members.MemberDTO{ContactNumber: "0912345678", Name: "Ann"}}
	handler := MemberCreate(svc, testLogger())

	payload := []byte(`{
		"contactNumber": "0912345678",
		"name": "Ann",
		"email": "ann@example.com",
		"dateOfBirth": "1990-04-01",
		"emergencyName": "Bob",
		"emergencyNumber": "0987654321"
	}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/members", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rec.Code)
	}
	if svc.created.DateOfBirth.Year() != 1990 {
		t.Fatalf("date of birth not parsed: %v", svc.created.DateOfBirth)
	}

	var envelope struct {
		Data members.MemberDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ContactNumber != "0912345678" {
		t.Fatalf("unexpected contact number %s", envelope.Data.ContactNumber)
	}
}

func TestMemberCreateRejectsBadDate(t *testing.T) {
	handler := MemberCreate(&stubMemberService{}, testLogger())

	payload := []byte(`{
		"contactNumber": "0912345678",
		"name": "Ann",
		"email": "ann@example.com",
		"dateOfBirth": "01/04/1990",
		"emergencyName": "Bob",
		"emergencyNumber": "0987654321"
	}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/members", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", rec.Code)
	}
}

func TestMemberCreateDuplicate(t *testing.T) {
	svc := &stubMemberService{err: pkgerrors.New(pkgerrors.CodeConflict, "member already exists")}
	handler := MemberCreate(svc, testLogger())

	payload := []byte(`{
		"contactNumber": "0912345678",
		"name": "Ann",
		"email": "ann@example.com",
		"dateOfBirth": "1990-04-01",
		"emergencyName": "Bob",
		"emergencyNumber": "0987654321"
	}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/members", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error.Message != "member already exists" {
		t.Fatalf("unexpected message %q", envelope.Error.Message)
	}
}

func TestMemberGetNotFound(t *testing.T) {
	svc := &stubMemberService{err: pkgerrors.New(pkgerrors.CodeNotFound, "member not found")}
	handler := MemberGet(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/members/0900000000", nil)
	req = withRouteParams(req, "contactNumber", "0900000000")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestMemberUpdateParsesPatch(t *testing.T) {
	svc := &stubMemberService{dto: &members.MemberDTO{ContactNumber: "0912345678"}}
	handler := MemberUpdate(svc, testLogger())

	payload := []byte(`{"balance": 250, "dateOfBirth": "1991-12-31"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/members/0912345678", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req = withRouteParams(req, "contactNumber", "0912345678")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.updated.Balance == nil || *svc.updated.Balance != 250 {
		t.Fatalf("balance not forwarded: %v", svc.updated.Balance)
	}
	if svc.updated.DateOfBirth == nil || svc.updated.DateOfBirth.Year() != 1991 {
		t.Fatalf("date of birth not forwarded: %v", svc.updated.DateOfBirth)
	}
	if svc.updated.Name != nil {
		t.Fatalf("expected untouched name to stay nil")
	}
}

func TestMemberUpdateRejectsUnknownField(t *testing.T) {
	handler := MemberUpdate(&stubMemberService{}, testLogger())

	payload := []byte(`{"contactNumber": "0999999999"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/members/0912345678", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req = withRouteParams(req, "contactNumber", "0912345678")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for unknown field got %d", rec.Code)
	}
}

func TestMemberDeleteSuccess(t *testing.T) {
	handler := MemberDelete(&stubMemberService{}, testLogger())

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/members/0912345678", nil)
	req = withRouteParams(req, "contactNumber", "0912345678")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var envelope struct {
		Data struct {
			Message string `json:"message"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Message != "member deleted" {
		t.Fatalf("unexpected message %q", envelope.Data.Message)
	}
}

func TestMemberDeleteMissingParam(t *testing.T) {
	handler := MemberDelete(&stubMemberService{}, testLogger())

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/members/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", rec.Code)
	}
}
