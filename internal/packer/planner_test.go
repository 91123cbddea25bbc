package packer

import (
	"errors"
	"testing"
)

func TestComputeBinCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sizes      []int
		capacities []int
		want       int
		wantErr    error
	}{
		{
			name:       "SingleBinCoversDemand",
			sizes:      []int{1, 2, 1},
			capacities: []int{30},
			want:       1,
		},
		{
			name:       "PrefixOfLargerList",
			sizes:      manySizes(45, 1),
			capacities: []int{30, 30, 30, 30},
			want:       2,
		},
		{
			name:       "ExactBoundary",
			sizes:      manySizes(60, 1),
			capacities: []int{30, 30, 30},
			want:       2,
		},
		{
			name:       "UnevenFirstBin",
			sizes:      append(manySizes(57, 1), manySizes(38, 2)...),
			capacities: []int{29, 30, 30, 30, 30},
			want:       5,
		},
		{
			name:       "TinyFirstBinStillCounts",
			sizes:      append(manySizes(57, 1), manySizes(38, 2)...),
			capacities: []int{2, 40, 40, 40, 40},
			want:       5,
		},
		{
			name:       "EmptyItemsNeedNoBins",
			sizes:      nil,
			capacities: []int{30},
			want:       0,
		},
		{
			name:       "InsufficientCapacity",
			sizes:      manySizes(100, 1),
			capacities: []int{30, 30, 30},
			wantErr:    ErrInsufficientCapacity,
		},
		{
			name:       "NonPositiveItemSize",
			sizes:      []int{1, 0, 2},
			capacities: []int{30},
			wantErr:    ErrInvalidItems,
		},
		{
			name:       "EmptyCapacityList",
			sizes:      []int{1},
			capacities: nil,
			wantErr:    ErrInvalidCapacities,
		},
		{
			name:       "NonPositiveCapacity",
			sizes:      []int{1},
			capacities: []int{30, -5},
			wantErr:    ErrInvalidCapacities,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := New().ComputeBinCount(Items(tc.sizes...), tc.capacities)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected error %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %d bins, got %d", tc.want, got)
			}
		})
	}
}

func manySizes(count, size int) []int {
	sizes := make([]int, count)
	for i := range sizes {
		sizes[i] = size
	}
	return sizes
}
