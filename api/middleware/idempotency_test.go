package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	pkgerrors "github.com/yuchialin/gymdesk-backend/pkg/errors"
)

type fakeStore struct {
	data map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string]string)}
}

func (f *fakeStore) Get(_ context.Context, key string) (string, error) {
	if v, ok := f.data[key]; ok {
		return v, nil
	}
	return "", redis.Nil
}

func (f *fakeStore) SetNX(_ context.Context, key string, value any, _ time.Duration) (bool, error) {
	if _, ok := f.data[key]; ok {
		return false, nil
	}
	str, _ := value.(string)
	f.data[key] = str
	return true, nil
}

func (f *fakeStore) IdempotencyKey(scope, id string) string {
	return fmt.Sprintf("fake:%s:%s", scope, id)
}

func (f *fakeStore) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.data, key)
	}
	return nil
}

func TestRuleMatches(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		pattern string
		want    bool
	}{
		{"transactions", http.MethodPost, "/api/v1/transaction_records", true},
		{"checkins", http.MethodPost, "/api/v1/checkinrecord", true},
		{"photos", http.MethodPost, "/api/v1/member_photo", true},
		{"member create", http.MethodPost, "/api/v1/members", false},
		{"transactions get", http.MethodGet, "/api/v1/transaction_records", false},
	}

	for _, tt := range tests {
		if got := ruleMatches(tt.method, tt.pattern); got != tt.want {
			t.Fatalf("%s: expected %v got %v", tt.name, tt.want, got)
		}
	}
}

func TestIdempotencyMiddlewarePassesThroughWithoutHeader(t *testing.T) {
	store := newFakeStore()
	mw := Idempotency(store, nil, 0)
	var calls int
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusCreated)
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkinrecord", strings.NewReader(`{"contactNumber":"0912345678"}`))
		resp := httptest.NewRecorder()
		mw(handler).ServeHTTP(resp, req)
		if resp.Code != http.StatusCreated {
			t.Fatalf("expected 201 got %d", resp.Code)
		}
	}
	if calls != 2 {
		t.Fatalf("handler should run each time without the header, got %d calls", calls)
	}
	if len(store.data) != 0 {
		t.Fatalf("no records should be stored without the header")
	}
}

func TestIdempotencyMiddlewareReplaysStoredResponse(t *testing.T) {
	store := newFakeStore()
	mw := Idempotency(store, nil, 0)
	var calls int
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"message":"transaction created"}}`))
	})

	body := `{"contactNumber":"0912345678","itemCode":"P-001","count":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transaction_records", strings.NewReader(body))
	req.Header.Set("Idempotency-Key", "abc")
	resp := httptest.NewRecorder()
	mw(handler).ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected first response 201 got %d", resp.Code)
	}

	replay := httptest.NewRequest(http.MethodPost, "/api/v1/transaction_records", strings.NewReader(body))
	replay.Header.Set("Idempotency-Key", "abc")
	rec := httptest.NewRecorder()
	mw(handler).ServeHTTP(rec, replay)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected replay status 201 got %d", rec.Code)
	}
	if rec.Header().Get("Content-Type") != "application/json" {
		t.Fatalf("expected content-type header preserved")
	}
	if strings.TrimSpace(rec.Body.String()) != `{"data":{"message":"transaction created"}}` {
		t.Fatalf("expected stored body got %s", rec.Body.String())
	}
	if calls != 1 {
		t.Fatalf("handler executed %d times, expected 1", calls)
	}
}

func TestIdempotencyMiddlewareDoesNotReplayServerFailures(t *testing.T) {
	store := newFakeStore()
	mw := Idempotency(store, nil, 0)
	var calls int
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":{"code":"DEPENDENCY_ERROR"}}`))
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"message":"transaction created"}}`))
	})

	body := `{"contactNumber":"0912345678","itemCode":"P-001","count":1}`
	first := httptest.NewRequest(http.MethodPost, "/api/v1/transaction_records", strings.NewReader(body))
	first.Header.Set("Idempotency-Key", "abc")
	firstRec := httptest.NewRecorder()
	mw(handler).ServeHTTP(firstRec, first)
	if firstRec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected first response 503 got %d", firstRec.Code)
	}
	if len(store.data) != 0 {
		t.Fatalf("server failures must not be recorded")
	}

	retry := httptest.NewRequest(http.MethodPost, "/api/v1/transaction_records", strings.NewReader(body))
	retry.Header.Set("Idempotency-Key", "abc")
	retryRec := httptest.NewRecorder()
	mw(handler).ServeHTTP(retryRec, retry)
	if retryRec.Code != http.StatusCreated {
		t.Fatalf("retry after outage should re-execute, got %d", retryRec.Code)
	}
	if calls != 2 {
		t.Fatalf("handler executed %d times, expected 2", calls)
	}

	replay := httptest.NewRequest(http.MethodPost, "/api/v1/transaction_records", strings.NewReader(body))
	replay.Header.Set("Idempotency-Key", "abc")
	replayRec := httptest.NewRecorder()
	mw(handler).ServeHTTP(replayRec, replay)
	if replayRec.Code != http.StatusCreated {
		t.Fatalf("expected replay status 201 got %d", replayRec.Code)
	}
	if calls != 2 {
		t.Fatalf("successful response must replay without a third execution, got %d calls", calls)
	}
}

func TestIdempotencyMiddlewareDetectsBodyChange(t *testing.T) {
	store := newFakeStore()
	mw := Idempotency(store, nil, 0)
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkinrecord", strings.NewReader(`{"contactNumber":"0912345678"}`))
	req.Header.Set("Idempotency-Key", "xyz")
	mw(handler).ServeHTTP(httptest.NewRecorder(), req)

	replay := httptest.NewRequest(http.MethodPost, "/api/v1/checkinrecord", strings.NewReader(`{"contactNumber":"0987654321"}`))
	replay.Header.Set("Idempotency-Key", "xyz")
	resp := httptest.NewRecorder()
	mw(handler).ServeHTTP(resp, replay)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("parse error response: %v", err)
	}
	if payload.Error.Code != string(pkgerrors.CodeConflict) {
		t.Fatalf("expected error code %s got %s", pkgerrors.CodeConflict, payload.Error.Code)
	}
}

func TestIdempotencyMiddlewareIgnoresUnlistedRoutes(t *testing.T) {
	store := newFakeStore()
	mw := Idempotency(store, nil, 0)
	var calls int
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/members", strings.NewReader(`{}`))
	req.Header.Set("Idempotency-Key", "abc")
	mw(handler).ServeHTTP(httptest.NewRecorder(), req)

	if calls != 1 {
		t.Fatalf("expected handler call on unlisted route")
	}
	if len(store.data) != 0 {
		t.Fatalf("unlisted routes must not store records")
	}
}
