package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/bin-allocator/internal/api"
	"github.com/eugenenazirov/bin-allocator/internal/packer"
	"github.com/eugenenazirov/bin-allocator/internal/storage"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	store := storage.NewMemoryStorage()
	allocator := packer.New(packer.WithLogger(zaptest.NewLogger(t)))
	handler := api.NewHandler(allocator, store)
	logger := zaptest.NewLogger(t)
	return api.NewRouter(handler, logger)
}

func performRequest(t *testing.T, handler http.Handler, method, target string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestIntegrationFlow(t *testing.T) {
	handler := newRouter(t)

	rec := performRequest(t, handler, http.MethodGet, "/api/health", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from health, got %d", rec.Code)
	}

	updatePayload := map[string]any{"capacities": []int{30, 30, 30, 30}}
	payload, _ := json.Marshal(updatePayload)
	rec = performRequest(t, handler, http.MethodPut, "/api/capacities", payload, map[string]string{"Content-Type": "application/json"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from capacities update, got %d", rec.Code)
	}

	items := make([]int, 45)
	for i := range items {
		items[i] = 1
	}
	packPayload := map[string]any{"items": items, "policy": "round-robin"}
	body, _ := json.Marshal(packPayload)
	rec = performRequest(t, handler, http.MethodPost, "/api/pack", body, map[string]string{"Content-Type": "application/json"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from pack, got %d", rec.Code)
	}

	var response struct {
		BinCount    int `json:"binCount"`
		TotalPlaced int `json:"totalPlaced"`
		DroppedSize int `json:"droppedSize"`
		Bins        []struct {
			Filled int `json:"filled"`
		} `json:"bins"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if response.BinCount != 2 {
		t.Fatalf("expected 2 bins for 45 units over 30-unit capacities, got %d", response.BinCount)
	}
	if response.TotalPlaced != 45 || response.DroppedSize != 0 {
		t.Fatalf("expected 45 units placed with no drops, got placed=%d dropped=%d",
			response.TotalPlaced, response.DroppedSize)
	}
	if response.Bins[0].Filled != 23 || response.Bins[1].Filled != 22 {
		t.Fatalf("expected round-robin fills 23/22, got %d/%d",
			response.Bins[0].Filled, response.Bins[1].Filled)
	}
}
