package packer

import (
	"slices"
	"testing"
)

func TestSplitBySize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sizes      []int
		descending bool
		want       [][]int
	}{
		{
			name:       "AscendingGroups",
			sizes:      []int{3, 1, 2, 1},
			descending: false,
			want:       [][]int{{1, 1}, {2}, {3}},
		},
		{
			name:       "DescendingGroups",
			sizes:      []int{3, 1, 2, 1},
			descending: true,
			want:       [][]int{{3}, {2}, {1, 1}},
		},
		{
			name:       "SingleSizeSingleGroup",
			sizes:      []int{5, 5, 5},
			descending: true,
			want:       [][]int{{5, 5, 5}},
		},
		{
			name:  "EmptyInputYieldsNoGroups",
			sizes: nil,
			want:  [][]int{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			groups := SplitBySize(Items(tc.sizes...), tc.descending)
			if len(groups) != len(tc.want) {
				t.Fatalf("expected %d groups, got %d", len(tc.want), len(groups))
			}
			for idx, group := range groups {
				got := make([]int, len(group))
				for j, item := range group {
					got[j] = item.Size()
				}
				if !slices.Equal(got, tc.want[idx]) {
					t.Fatalf("group %d: expected %v, got %v", idx, tc.want[idx], got)
				}
			}
		})
	}
}

func TestSplitBySizeDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	items := Items(3, 1, 2)
	SplitBySize(items, true)

	want := []int{3, 1, 2}
	for idx, item := range items {
		if item.Size() != want[idx] {
			t.Fatalf("input mutated at position %d: expected %d, got %d", idx, want[idx], item.Size())
		}
	}
}

func TestSplitBySizeIsIdempotentOnGroups(t *testing.T) {
	t.Parallel()

	for _, group := range SplitBySize(Items(1, 3, 2, 3, 1, 1), false) {
		again := SplitBySize(group, false)
		if len(again) != 1 {
			t.Fatalf("re-splitting a group produced %d groups, expected 1", len(again))
		}
		if len(again[0]) != len(group) || again[0].Size() != group.Size() {
			t.Fatalf("re-splitting a group changed it: %v vs %v", again[0], group)
		}
	}
}

func TestGroupSize(t *testing.T) {
	t.Parallel()

	if got := (Group{}).Size(); got != 0 {
		t.Fatalf("expected empty group size 0, got %d", got)
	}
	if got := (Group{NewItem(7), NewItem(7)}).Size(); got != 7 {
		t.Fatalf("expected group size 7, got %d", got)
	}
}
