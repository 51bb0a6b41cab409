package indexer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestAPI(result Result, err error) *ReindexAPI {
	return &ReindexAPI{Runner: func(ctx context.Context) (Result, error) {
		return result, err
	}}
}

func TestReindexRejectsMissingAuth(t *testing.T) {
	t.Setenv("SEARCH_ADMIN_KEY", "sekrit")
	api := newTestAPI(Result{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/search/reindex", nil)
	rec := httptest.NewRecorder()
	api.Reindex(rec, req, nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["error"] != "Unauthorized" {
		t.Fatalf("expected Unauthorized error, got %v", body)
	}
}

func TestReindexRejectsWrongKey(t *testing.T) {
	t.Setenv("SEARCH_ADMIN_KEY", "sekrit")
	api := newTestAPI(Result{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/search/reindex", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec := httptest.NewRecorder()
	api.Reindex(rec, req, nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestReindexRejectsWhenKeyUnset(t *testing.T) {
	t.Setenv("SEARCH_ADMIN_KEY", "")
	api := newTestAPI(Result{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/search/reindex", nil)
	req.Header.Set("Authorization", "Bearer ")
	rec := httptest.NewRecorder()
	api.Reindex(rec, req, nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 when no key is configured, got %d", rec.Code)
	}
}

func TestReindexSuccess(t *testing.T) {
	t.Setenv("SEARCH_ADMIN_KEY", "sekrit")
	api := newTestAPI(Result{Count: 3}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/search/reindex", nil)
	req.Header.Set("Authorization", "Bearer sekrit")
	rec := httptest.NewRecorder()
	api.Reindex(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Message string `json:"message"`
		Count   int    `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Count != 3 {
		t.Fatalf("expected count 3, got %d", body.Count)
	}
	if body.Message != "Successfully indexed 3 blog posts" {
		t.Fatalf("unexpected message: %q", body.Message)
	}
}

func TestReindexPipelineFailure(t *testing.T) {
	t.Setenv("SEARCH_ADMIN_KEY", "sekrit")
	api := newTestAPI(Result{}, errors.New("mongo down"))

	req := httptest.NewRequest(http.MethodPost, "/api/search/reindex", nil)
	req.Header.Set("Authorization", "Bearer sekrit")
	rec := httptest.NewRecorder()
	api.Reindex(rec, req, nil)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["error"] != "Failed to index blog posts" || body["details"] != "mongo down" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestHealth(t *testing.T) {
	api := NewReindexAPI()
	req := httptest.NewRequest(http.MethodGet, "/api/search/reindex", nil)
	rec := httptest.NewRecorder()
	api.Health(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Message   string `json:"message"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Message != "Blog reindex API is healthy" {
		t.Fatalf("unexpected message: %q", body.Message)
	}
	if body.Timestamp == "" {
		t.Fatal("expected a timestamp")
	}
}
