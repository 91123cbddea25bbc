package storage

import (
	"errors"
	"sync"
)

const maxCapacities = 100

var (
	// ErrInvalidCapacities indicates the provided capacity list violates validation rules.
	ErrInvalidCapacities = errors.New("capacities must contain between 1 and 100 positive integers")
)

// Default capacities follow the canonical demonstration setup: a
// slightly smaller first bin followed by four standard ones.
var defaultCapacities = []int{29, 30, 30, 30, 30}

// Storage provides access to the bin capacity list used by the allocator.
type Storage interface {
	GetCapacities() ([]int, error)
	SetCapacities(capacities []int) error
}

// MemoryStorage keeps the capacity list in-memory and guards access
// with a RWMutex. Order is preserved as supplied: index 0 is the first
// bin to be filled, and duplicate capacities are expected.
type MemoryStorage struct {
	mu         sync.RWMutex
	capacities []int
}

// NewMemoryStorage initialises storage with a copy of the default capacity list.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		capacities: clone(defaultCapacities),
	}
}

// DefaultCapacities returns a copy of the default capacity list.
func DefaultCapacities() []int {
	return clone(defaultCapacities)
}

// GetCapacities returns a defensive copy of the currently configured capacity list.
func (s *MemoryStorage) GetCapacities() ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return clone(s.capacities), nil
}

// SetCapacities validates and stores the provided capacity list.
func (s *MemoryStorage) SetCapacities(capacities []int) error {
	validated, err := validateCapacities(capacities)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.capacities = validated
	s.mu.Unlock()

	return nil
}

func clone(src []int) []int {
	if len(src) == 0 {
		return []int{}
	}

	out := make([]int, len(src))
	copy(out, src)
	return out
}

func validateCapacities(capacities []int) ([]int, error) {
	if len(capacities) == 0 || len(capacities) > maxCapacities {
		return nil, ErrInvalidCapacities
	}
	for _, capacity := range capacities {
		if capacity <= 0 {
			return nil, ErrInvalidCapacities
		}
	}
	return clone(capacities), nil
}
