package application

import (
	"net/http"
	"testing"
	"time"

	"slices"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/bin-allocator/internal/config"
	"github.com/eugenenazirov/bin-allocator/internal/packer"
)

func TestNewInitializesDependencies(t *testing.T) {
	cfg := baseTestConfig(":8085")
	cfg.InitialCapacities = []int{2, 40, 40}
	logger := zaptest.NewLogger(t)

	app, err := New(cfg, logger)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	capacities, err := app.storage.GetCapacities()
	if err != nil {
		t.Fatalf("GetCapacities returned error: %v", err)
	}
	if want := []int{2, 40, 40}; !slices.Equal(capacities, want) {
		t.Fatalf("expected capacities %v, got %v", want, capacities)
	}
	if app.server == nil || app.router == nil || app.handler == nil || app.allocator == nil {
		t.Fatalf("expected server, router, handler, and allocator to be initialized")
	}
	if app.Server() != app.server {
		t.Fatalf("Server accessor did not return underlying instance")
	}
}

func TestNewServerAppliesConfig(t *testing.T) {
	cfg := baseTestConfig("9090")
	handler := http.NewServeMux()

	server := NewServer(cfg, handler)
	if server.Addr != ":9090" {
		t.Fatalf("expected address :9090, got %s", server.Addr)
	}
	if server.Handler != handler {
		t.Fatalf("expected handler to be applied")
	}
	if server.ReadHeaderTimeout != cfg.ReadHeaderTimeout ||
		server.WriteTimeout != cfg.WriteTimeout ||
		server.IdleTimeout != cfg.IdleTimeout {
		t.Fatalf("server timeouts do not match configuration")
	}
}

func TestNewReturnsErrorForInvalidCapacities(t *testing.T) {
	cfg := baseTestConfig(":0")
	cfg.InitialCapacities = nil

	if _, err := New(cfg, zaptest.NewLogger(t)); err == nil {
		t.Fatalf("expected error for invalid capacities")
	}
}

func baseTestConfig(port string) config.Config {
	return config.Config{
		Port:                 port,
		InitialCapacities:    []int{29, 30, 30, 30, 30},
		DefaultPolicy:        packer.PolicyRoundRobin,
		ShutdownGracePeriod:  50 * time.Millisecond,
		ReadHeaderTimeout:    20 * time.Millisecond,
		WriteTimeout:         30 * time.Millisecond,
		IdleTimeout:          40 * time.Millisecond,
		EnableRequestLogging: false,
		RateLimitRPS:         0,
		RateLimitBurst:       0,
	}
}
