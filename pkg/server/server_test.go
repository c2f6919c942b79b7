package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/helgeesch/captain-arro/pkg/pipeline"
	"github.com/helgeesch/captain-arro/pkg/store"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	logger := log.NewWithOptions(io.Discard, log.Options{})
	return New(Config{
		Runner: pipeline.NewRunner(nil, nil, logger),
		Store:  st,
		Logger: logger,
	})
}

func TestHealthz(t *testing.T) {
	h := testServer(t).Handler()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestGenerate(t *testing.T) {
	h := testServer(t).Handler()

	tests := []struct {
		name string
		url  string
		want []string
	}{
		{
			"flow with defaults",
			"/v1/arrows/flow?no_unique_id=true",
			[]string{`viewBox="0 0 100 100"`, "@keyframes flow1", "flow1 5.00s"},
		},
		{
			"spread with params",
			"/v1/arrows/spread?orientation=horizontal&no_unique_id=true",
			[]string{`viewBox="0 0 300 150"`, "@keyframes moveLeft"},
		},
		{
			"fixed duration",
			"/v1/arrows/flow?duration_seconds=2&no_unique_id=true",
			[]string{"flow1 2.00s"},
		},
		{
			"spotlight-spread",
			"/v1/arrows/spotlight-spread?no_unique_id=true",
			[]string{"spotlightGradientLeft", "animateTransform"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest("GET", tt.url, nil))

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
				t.Errorf("Content-Type = %q", ct)
			}
			for _, w := range tt.want {
				if !strings.Contains(rec.Body.String(), w) {
					t.Errorf("body missing %q", w)
				}
			}
		})
	}
}

func TestGenerateErrors(t *testing.T) {
	h := testServer(t).Handler()

	tests := []struct {
		name       string
		url        string
		wantStatus int
		wantCode   string
	}{
		{"unknown pattern", "/v1/arrows/swirl", http.StatusBadRequest, "INVALID_PATTERN"},
		{"bad direction", "/v1/arrows/flow?direction=sideways", http.StatusBadRequest, "INVALID_DIRECTION"},
		{"both speeds", "/v1/arrows/flow?speed_px_per_second=20&duration_seconds=2", http.StatusBadRequest, "INVALID_SPEED"},
		{"non-numeric width", "/v1/arrows/flow?width=wide", http.StatusBadRequest, "INVALID_CONFIG"},
		{
			"markup in color",
			"/v1/arrows/flow?color=%22%3E%3C%2Fstyle%3E%3Cscript%3Ealert(1)%3C%2Fscript%3E",
			http.StatusBadRequest, "INVALID_CONFIG",
		},
		{
			"markup in easing",
			"/v1/arrows/flow?easing=ease%22%3E%3Cscript%3E",
			http.StatusBadRequest, "INVALID_CONFIG",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest("GET", tt.url, nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body = %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			var body errorBody
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if body.Error.Code != tt.wantCode {
				t.Errorf("error code = %q, want %q", body.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestGenerateCacheHeader(t *testing.T) {
	h := testServer(t).Handler()
	url := "/v1/arrows/flow?id_suffix=abc123"

	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest("GET", url, nil))
	if got := first.Header().Get("X-Cache"); got != "MISS" {
		t.Errorf("first X-Cache = %q, want MISS", got)
	}

	// The null cache never stores, so deterministic requests still miss.
	second := httptest.NewRecorder()
	h.ServeHTTP(second, httptest.NewRequest("GET", url, nil))
	if got := second.Header().Get("X-Cache"); got != "MISS" {
		t.Errorf("second X-Cache = %q, want MISS with null cache", got)
	}
	if !bytes.Equal(first.Body.Bytes(), second.Body.Bytes()) {
		t.Error("pinned-suffix responses should be identical")
	}
	if cc := first.Header().Get("Cache-Control"); cc != "public, max-age=86400" {
		t.Errorf("deterministic Cache-Control = %q", cc)
	}

	random := httptest.NewRecorder()
	h.ServeHTTP(random, httptest.NewRequest("GET", "/v1/arrows/flow", nil))
	if cc := random.Header().Get("Cache-Control"); cc != "no-store" {
		t.Errorf("random-suffix Cache-Control = %q", cc)
	}
}

func TestSavedArrowLifecycle(t *testing.T) {
	h := testServer(t).Handler()

	// Save
	payload := `{"name": "header", "options": {"pattern": "flow", "speed_px_per_second": 20}}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/v1/arrows", strings.NewReader(payload)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("save status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var saved store.Record
	if err := json.Unmarshal(rec.Body.Bytes(), &saved); err != nil {
		t.Fatalf("decode saved record: %v", err)
	}
	if saved.ID == "" || saved.Name != "header" {
		t.Fatalf("saved record = %+v", saved)
	}

	// List
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/arrows/saved", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var list []store.Record
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len(list) = %d, want 1", len(list))
	}

	// Get as JSON
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/arrows/saved/"+saved.ID, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}

	// Get as SVG
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/arrows/saved/"+saved.ID+"?format=svg", nil))
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("svg Content-Type = %q", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "<svg ") {
		t.Error("svg body does not start with an svg element")
	}

	// Delete
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("DELETE", "/v1/arrows/saved/"+saved.ID, nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}

	// Gone
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/arrows/saved/"+saved.ID, nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", rec.Code)
	}
}

func TestSavedArrowSVGRendersFresh(t *testing.T) {
	h := testServer(t).Handler()

	payload := `{"name": "banner", "options": {"pattern": "flow", "speed_px_per_second": 20}}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/v1/arrows", strings.NewReader(payload)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("save status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var saved store.Record
	if err := json.Unmarshal(rec.Body.Bytes(), &saved); err != nil {
		t.Fatalf("decode saved record: %v", err)
	}

	// Each svg fetch re-renders from the stored options, so the default
	// random id suffix differs between fetches and the same saved arrow can
	// embed on one page twice.
	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest("GET", "/v1/arrows/saved/"+saved.ID+"?format=svg", nil))
	second := httptest.NewRecorder()
	h.ServeHTTP(second, httptest.NewRequest("GET", "/v1/arrows/saved/"+saved.ID+"?format=svg", nil))

	for _, r := range []*httptest.ResponseRecorder{first, second} {
		if r.Code != http.StatusOK {
			t.Fatalf("svg status = %d", r.Code)
		}
		if !strings.HasPrefix(r.Body.String(), "<svg ") {
			t.Error("svg body does not start with an svg element")
		}
	}
	if bytes.Equal(first.Body.Bytes(), second.Body.Bytes()) {
		t.Error("two svg fetches are identical, want distinct id suffixes")
	}
}

func TestSavedArrowNotFound(t *testing.T) {
	h := testServer(t).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/arrows/saved/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ARROW_NOT_FOUND") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestSaveInvalidOptions(t *testing.T) {
	h := testServer(t).Handler()

	rec := httptest.NewRecorder()
	payload := `{"name": "x", "options": {"pattern": "swirl"}}`
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/v1/arrows", strings.NewReader(payload)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestNoStoreConfigured(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	h := New(Config{Logger: logger}).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/arrows/saved", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}
