package packer

import (
	"fmt"
	"strings"
)

// Policy selects a placement strategy.
type Policy string

const (
	// PolicySequential fills bins one at a time in capacity-list order.
	PolicySequential Policy = "sequential"
	// PolicyRoundRobin offers items to bins in strict rotation.
	PolicyRoundRobin Policy = "round-robin"
)

// ParsePolicy maps a policy name to a Policy value.
func ParsePolicy(raw string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(raw))) {
	case PolicySequential:
		return PolicySequential, nil
	case PolicyRoundRobin:
		return PolicyRoundRobin, nil
	}
	return "", fmt.Errorf("unknown policy %q", raw)
}

// Packer describes the behaviour required from a bin allocator.
type Packer interface {
	Pack(policy Policy, items []Item, capacities []int, descending bool) ([]*Bin, error)
}

// Result summarises a packing run. TotalPlaced and DroppedSize are
// derived from the bin fills; round-robin runs may drop items, so
// DroppedSize is the portion of the input that found no bin.
type Result struct {
	Bins        []*Bin
	TotalInput  int
	TotalPlaced int
	DroppedSize int
}

// Summarize derives placement totals for the given bins against the
// original input.
func Summarize(bins []*Bin, input []Item) Result {
	placed := 0
	for _, bin := range bins {
		placed += bin.Filled()
	}
	total := SumSizes(input)
	return Result{
		Bins:        bins,
		TotalInput:  total,
		TotalPlaced: placed,
		DroppedSize: total - placed,
	}
}
