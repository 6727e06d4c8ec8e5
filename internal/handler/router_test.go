package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewRouter_Health(t *testing.T) {
	container := newTestContainer(&MockStorageClient{}, &MockFileInfoClient{}, &MockAnalyticsClient{})

	router := NewRouter(container)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestNewRouter_RoutesDownload(t *testing.T) {
	fileInfo := &MockFileInfoClient{}
	container := newTestContainer(&MockStorageClient{}, fileInfo, &MockAnalyticsClient{})

	router := NewRouter(container)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resources/res-1/download?url=https://x/a.pdf&name=a.pdf", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	// Lookup mock returns not-found, so the direct url strategy answers.
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), `"directUrl"`) {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestNewRouter_UnknownRoute(t *testing.T) {
	container := newTestContainer(&MockStorageClient{}, &MockFileInfoClient{}, &MockAnalyticsClient{})

	router := NewRouter(container)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
}
