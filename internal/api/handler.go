package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/eugenenazirov/bin-allocator/internal/packer"
	"github.com/eugenenazirov/bin-allocator/internal/storage"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// Handler wires packer and storage dependencies into HTTP handlers.
type Handler struct {
	packer  packer.Packer
	storage storage.Storage

	defaultPolicy packer.Policy
	largestFirst  bool

	clock func() time.Time

	mu                  sync.RWMutex
	capacitiesUpdatedAt time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// WithDefaultPolicy sets the placement policy used when a pack request
// does not name one.
func WithDefaultPolicy(policy packer.Policy) HandlerOption {
	return func(h *Handler) {
		h.defaultPolicy = policy
	}
}

// WithLargestFirst sets the default sort direction for pack requests.
func WithLargestFirst(largestFirst bool) HandlerOption {
	return func(h *Handler) {
		h.largestFirst = largestFirst
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(p packer.Packer, store storage.Storage, opts ...HandlerOption) *Handler {
	h := &Handler{
		packer:        p,
		storage:       store,
		defaultPolicy: packer.PolicyRoundRobin,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.capacitiesUpdatedAt = h.clock()
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetCapacities(w http.ResponseWriter, r *http.Request) {
	_ = r
	capacities, err := h.storage.GetCapacities()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	resp := capacitiesResponse{
		Capacities: capacities,
		UpdatedAt:  h.currentCapacitiesUpdatedAt(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePutCapacities(w http.ResponseWriter, r *http.Request) {
	var req capacitiesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	if len(req.Capacities) == 0 {
		writeError(w, http.StatusBadRequest, "Invalid capacities", "capacities must contain at least one bin size")
		return
	}

	if err := h.storage.SetCapacities(req.Capacities); err != nil {
		if errors.Is(err, storage.ErrInvalidCapacities) {
			writeError(w, http.StatusBadRequest, "Invalid capacities", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}

	h.markCapacitiesUpdated()

	capacities, err := h.storage.GetCapacities()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	resp := capacitiesResponse{
		Capacities: capacities,
		UpdatedAt:  h.currentCapacitiesUpdatedAt(),
		Message:    "Capacities updated successfully",
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePack(w http.ResponseWriter, r *http.Request) {
	var req packRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "Invalid request", "items must contain at least one size")
		return
	}

	policy := h.defaultPolicy
	if req.Policy != "" {
		parsed, err := packer.ParsePolicy(req.Policy)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid policy", err.Error())
			return
		}
		policy = parsed
	}

	largestFirst := h.largestFirst
	if req.LargestFirst != nil {
		largestFirst = *req.LargestFirst
	}

	capacities := req.Capacities
	if len(capacities) == 0 {
		stored, err := h.storage.GetCapacities()
		if err != nil {
			writeInternalError(w, err)
			return
		}
		capacities = stored
	}

	items := packer.Items(req.Items...)

	start := time.Now()
	bins, packErr := h.packer.Pack(policy, items, capacities, largestFirst)
	elapsed := time.Since(start)

	if packErr != nil {
		switch {
		case errors.Is(packErr, packer.ErrInvalidItems):
			writeError(w, http.StatusBadRequest, "Invalid request", packErr.Error())
		case errors.Is(packErr, packer.ErrInvalidCapacities):
			writeError(w, http.StatusBadRequest, "Invalid capacities", packErr.Error())
		case errors.Is(packErr, packer.ErrInsufficientCapacity):
			suggestion := fmt.Sprintf("Supply bin capacities summing to at least %d or reduce the item set", packer.SumSizes(items))
			writeError(w, http.StatusUnprocessableEntity, "Insufficient capacity", packErr.Error(), suggestion)
		default:
			writeInternalError(w, packErr)
		}
		return
	}

	result := packer.Summarize(bins, items)

	binViews := make([]binView, len(bins))
	for idx, bin := range bins {
		placed := bin.Items()
		sizes := make([]int, len(placed))
		for j, item := range placed {
			sizes[j] = item.Size()
		}
		binViews[idx] = binView{
			Index:     bin.Index(),
			Capacity:  bin.Capacity(),
			Filled:    bin.Filled(),
			Remaining: bin.Remaining(),
			Items:     sizes,
		}
	}

	resp := packResponse{
		Policy:            string(policy),
		LargestFirst:      largestFirst,
		BinCount:          len(bins),
		TotalInput:        result.TotalInput,
		TotalPlaced:       result.TotalPlaced,
		DroppedSize:       result.DroppedSize,
		Bins:              binViews,
		CalculationTimeMs: elapsed.Milliseconds(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) currentCapacitiesUpdatedAt() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.capacitiesUpdatedAt
}

func (h *Handler) markCapacitiesUpdated() {
	h.mu.Lock()
	h.capacitiesUpdatedAt = h.clock()
	h.mu.Unlock()
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type capacitiesRequest struct {
	Capacities []int `json:"capacities"`
}

type packRequest struct {
	Items        []int  `json:"items"`
	Policy       string `json:"policy,omitempty"`
	LargestFirst *bool  `json:"largestFirst,omitempty"`
	Capacities   []int  `json:"capacities,omitempty"`
}

type binView struct {
	Index     int   `json:"index"`
	Capacity  int   `json:"capacity"`
	Filled    int   `json:"filled"`
	Remaining int   `json:"remaining"`
	Items     []int `json:"items"`
}

type packResponse struct {
	Policy            string    `json:"policy"`
	LargestFirst      bool      `json:"largestFirst"`
	BinCount          int       `json:"binCount"`
	TotalInput        int       `json:"totalInput"`
	TotalPlaced       int       `json:"totalPlaced"`
	DroppedSize       int       `json:"droppedSize"`
	Bins              []binView `json:"bins"`
	CalculationTimeMs int64     `json:"calculationTimeMs"`
}

type capacitiesResponse struct {
	Capacities []int     `json:"capacities"`
	UpdatedAt  time.Time `json:"updatedAt"`
	Message    string    `json:"message,omitempty"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
