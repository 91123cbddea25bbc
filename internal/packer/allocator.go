package packer

import (
	"fmt"

	"go.uber.org/zap"
)

// Allocator packs items into capacity-bounded bins. Each Pack call is
// self-contained: bins, groups, and placement counters live only for
// the duration of the call, so a single Allocator is safe to share
// across concurrent runs.
type Allocator struct {
	logger *zap.Logger
	strict bool
}

// Option configures an Allocator.
type Option func(*Allocator)

// WithLogger sets the logger used for progress notices and overflow
// diagnostics. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Allocator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithStrictPlacement makes round-robin placement fail with
// ErrItemOverflow instead of dropping items that do not fit their
// assigned bin.
func WithStrictPlacement(strict bool) Option {
	return func(a *Allocator) {
		a.strict = strict
	}
}

// New constructs an Allocator.
func New(opts ...Option) *Allocator {
	a := &Allocator{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Pack places the items into bins drawn from the capacity list using
// the requested policy.
func (a *Allocator) Pack(policy Policy, items []Item, capacities []int, descending bool) ([]*Bin, error) {
	switch policy {
	case PolicySequential:
		return a.PackSequential(items, capacities, descending)
	case PolicyRoundRobin:
		return a.PackRoundRobin(items, capacities, descending)
	}
	return nil, fmt.Errorf("unknown policy %q", policy)
}

// PackSequential fills bins one at a time, in capacity-list order.
// Each item goes into the current bin if it fits; otherwise the cursor
// advances and the item is appended to the fresh bin without a second
// fit check, so a bin smaller than a single item will be overfilled
// rather than skipped. The cursor never retreats; running out of bins
// returns ErrInsufficientCapacity.
func (a *Allocator) PackSequential(items []Item, capacities []int, descending bool) ([]*Bin, error) {
	binCount, err := a.ComputeBinCount(items, capacities)
	if err != nil {
		return nil, err
	}
	bins := allocateBins(capacities, binCount)

	cursor := 0
	for _, group := range SplitBySize(items, descending) {
		for _, item := range group {
			if !bins[cursor].Fits(item) {
				cursor++
				if cursor == len(bins) {
					return nil, fmt.Errorf("placing item of size %d: %w", item.size, ErrInsufficientCapacity)
				}
			}
			bins[cursor].append(item)
			a.logger.Debug("placed item",
				zap.Int("item_size", item.size),
				zap.Int("bin", cursor),
				zap.Int("bin_filled", bins[cursor].filled),
			)
		}
	}
	return bins, nil
}

// PackRoundRobin offers items to bins in strict rotation. The rotation
// counter advances for every item whether or not it is placed, so the
// k-th item is always offered to bin k mod binCount. An item that does
// not fit its assigned bin is dropped with a diagnostic and the run
// continues; with strict placement enabled the run fails instead.
func (a *Allocator) PackRoundRobin(items []Item, capacities []int, descending bool) ([]*Bin, error) {
	binCount, err := a.ComputeBinCount(items, capacities)
	if err != nil {
		return nil, err
	}
	bins := allocateBins(capacities, binCount)

	next := 0
	for _, group := range SplitBySize(items, descending) {
		for _, item := range group {
			target := bins[next%binCount]
			next++
			if !target.Fits(item) {
				if a.strict {
					return nil, fmt.Errorf("bin %d cannot hold item of size %d: %w", target.index, item.size, ErrItemOverflow)
				}
				a.logger.Warn("container overflow, item skipped",
					zap.Int("item_size", item.size),
					zap.Int("bin", target.index),
					zap.Int("bin_filled", target.filled),
					zap.Int("bin_capacity", target.capacity),
				)
				continue
			}
			target.append(item)
			a.logger.Debug("placed item",
				zap.Int("item_size", item.size),
				zap.Int("bin", target.index),
				zap.Int("bin_filled", target.filled),
			)
		}
	}
	return bins, nil
}

func allocateBins(capacities []int, count int) []*Bin {
	bins := make([]*Bin, count)
	for i := range bins {
		bins[i] = NewBin(i, capacities[i])
	}
	return bins
}
