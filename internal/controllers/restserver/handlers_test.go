package restserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/chandrakala/vedicclock/internal/ticker"
	"github.com/chandrakala/vedicclock/pkg/config"
	"github.com/chandrakala/vedicclock/pkg/vedictime"
)

func newTestController(t *testing.T) (*Controller, *ticker.Holder) {
	t.Helper()

	logger := zap.NewNop().Sugar()
	observer := config.ObserverData{Name: "New Delhi", Latitude: 28.6139, Longitude: 77.2090}
	tk := ticker.New(vedictime.Location{Latitude: observer.Latitude, Longitude: observer.Longitude}, time.Second, nil, 0, logger)

	var wg sync.WaitGroup
	ctrl, err := NewController(context.Background(), &wg, config.RESTServerData{Port: 8080}, observer, tk.Holder(), logger)
	if err != nil {
		t.Fatalf("NewController returned error: %v", err)
	}
	return ctrl, tk.Holder()
}

func TestGetSnapshotBeforeFirstTick(t *testing.T) {
	ctrl, _ := newTestController(t)

	req := httptest.NewRequest(http.MethodGet, "/api/snapshot", nil)
	rec := httptest.NewRecorder()
	ctrl.setupRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, expected %d before the first tick", rec.Code, http.StatusServiceUnavailable)
	}
}

func TestGetSnapshotOnDemand(t *testing.T) {
	ctrl, _ := newTestController(t)

	req := httptest.NewRequest(http.MethodGet, "/api/snapshot?time=2024-01-25T12:00:00Z", nil)
	rec := httptest.NewRecorder()
	ctrl.setupRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200; body: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, expected application/json", ct)
	}

	var snap vedictime.Snapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("response is not a snapshot: %v", err)
	}
	if snap.Tithi.Number != 15 {
		t.Errorf("tithi = %d, expected 15 on the Jan 2024 Purnima approach", snap.Tithi.Number)
	}
	if snap.Tithi.Paksha != "Shukla" {
		t.Errorf("paksha = %s, expected Shukla", snap.Tithi.Paksha)
	}
}

func TestGetSnapshotRejectsBadParameters(t *testing.T) {
	ctrl, _ := newTestController(t)
	router := ctrl.setupRouter()

	cases := []struct {
		url    string
		status int
	}{
		{"/api/snapshot?time=yesterday", http.StatusBadRequest},
		{"/api/snapshot?lat=banana", http.StatusBadRequest},
		{"/api/snapshot?lat=99&time=2024-01-25T12:00:00Z", http.StatusBadRequest},
		{"/api/snapshot?time=3500-01-01T00:00:00Z", http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.url, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != tc.status {
			t.Errorf("GET %s status = %d, expected %d", tc.url, rec.Code, tc.status)
		}
	}
}

func TestGetSnapshotServesLatest(t *testing.T) {
	ctrl, holder := newTestController(t)

	snap, err := vedictime.Compute(time.Date(2024, 2, 9, 15, 0, 0, 0, time.UTC), vedictime.Location{Latitude: 28.6139, Longitude: 77.2090})
	if err != nil {
		t.Fatal(err)
	}
	holder.Publish(snap)

	req := httptest.NewRequest(http.MethodGet, "/api/snapshot", nil)
	rec := httptest.NewRecorder()
	ctrl.setupRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}
	var got vedictime.Snapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Tithi.Number != snap.Tithi.Number {
		t.Errorf("served tithi %d, published %d", got.Tithi.Number, snap.Tithi.Number)
	}
}

func TestReferenceTables(t *testing.T) {
	ctrl, _ := newTestController(t)
	router := ctrl.setupRouter()

	cases := []struct {
		url  string
		size int
	}{
		{"/api/reference/tithis", 30},
		{"/api/reference/nakshatras", 27},
		{"/api/reference/masas", 12},
		{"/api/reference/muhurtas", 30},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.url, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, expected 200", tc.url, rec.Code)
			continue
		}
		var entries []referenceEntry
		if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
			t.Errorf("GET %s: %v", tc.url, err)
			continue
		}
		if len(entries) != tc.size {
			t.Errorf("GET %s returned %d entries, expected %d", tc.url, len(entries), tc.size)
		}
		if len(entries) > 0 && entries[0].Number != 1 {
			t.Errorf("GET %s first entry number = %d, expected 1", tc.url, entries[0].Number)
		}
	}
}

func TestHealthAndRequestID(t *testing.T) {
	ctrl, _ := newTestController(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	ctrl.setupRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header missing")
	}

	var health map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatal(err)
	}
	if health["status"] != "ok" {
		t.Errorf("health status = %v, expected ok", health["status"])
	}
	if health["snapshotReady"] != false {
		t.Errorf("snapshotReady = %v, expected false before first tick", health["snapshotReady"])
	}
}

func TestMsgpackFormat(t *testing.T) {
	ctrl, _ := newTestController(t)

	req := httptest.NewRequest(http.MethodGet, "/api/reference/masas?format=msgpack", nil)
	rec := httptest.NewRecorder()
	ctrl.setupRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/x-msgpack" {
		t.Errorf("Content-Type = %q, expected application/x-msgpack", ct)
	}
}
