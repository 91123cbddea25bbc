package packer

import "sort"

// Group is a run of items that all share the same size.
type Group []Item

// Size returns the size shared by every item in the group.
func (g Group) Size() int {
	if len(g) == 0 {
		return 0
	}
	return g[0].size
}

// SplitBySize sorts the items by size, descending or ascending, and
// splits the sorted sequence into runs of equal size. Group order
// follows the sort direction, so group sizes are monotonic across the
// returned slice. Empty input yields no groups.
func SplitBySize(items []Item, descending bool) []Group {
	if len(items) == 0 {
		return nil
	}

	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		if descending {
			return sorted[i].size > sorted[j].size
		}
		return sorted[i].size < sorted[j].size
	})

	var groups []Group
	current := Group{sorted[0]}
	for _, item := range sorted[1:] {
		if item.size == current.Size() {
			current = append(current, item)
			continue
		}
		groups = append(groups, current)
		current = Group{item}
	}

	return append(groups, current)
}
