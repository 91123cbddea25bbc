package packer

import "go.uber.org/zap"

// ComputeBinCount returns the smallest prefix length of capacities
// whose cumulative sum covers the total size of items. An empty item
// collection needs zero bins. If even the full capacity list cannot
// cover the demand, ErrInsufficientCapacity is returned instead of
// walking past the end of the list.
func (a *Allocator) ComputeBinCount(items []Item, capacities []int) (int, error) {
	if err := validateInputs(items, capacities); err != nil {
		return 0, err
	}

	demand := SumSizes(items)
	binCount := 0
	containerSum := 0
	for containerSum < demand {
		if binCount == len(capacities) {
			return 0, ErrInsufficientCapacity
		}
		containerSum += capacities[binCount]
		binCount++
	}

	a.logger.Debug("computed required bin count",
		zap.Int("total_item_size", demand),
		zap.Int("bin_count", binCount),
	)
	return binCount, nil
}

func validateInputs(items []Item, capacities []int) error {
	for _, item := range items {
		if item.size <= 0 {
			return ErrInvalidItems
		}
	}
	if len(capacities) == 0 {
		return ErrInvalidCapacities
	}
	for _, capacity := range capacities {
		if capacity <= 0 {
			return ErrInvalidCapacities
		}
	}
	return nil
}
