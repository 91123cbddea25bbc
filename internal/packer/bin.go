package packer

import (
	"fmt"
	"strings"
)

// Bin accumulates items against a fixed capacity. A bin belongs to a
// single packing run: items are only ever appended, and the running
// fill always equals the sum of the items placed so far.
type Bin struct {
	index    int
	capacity int
	filled   int
	items    []Item
}

// NewBin creates an empty bin with the given zero-based index and capacity.
func NewBin(index, capacity int) *Bin {
	return &Bin{index: index, capacity: capacity}
}

// Index returns the bin's position in the capacity list.
func (b *Bin) Index() int {
	return b.index
}

// Capacity returns the fixed capacity assigned at creation.
func (b *Bin) Capacity() int {
	return b.capacity
}

// Filled returns the total size of the items placed so far.
func (b *Bin) Filled() int {
	return b.filled
}

// Remaining returns the unused capacity.
func (b *Bin) Remaining() int {
	return b.capacity - b.filled
}

// Items returns a defensive copy of the placed items in placement order.
func (b *Bin) Items() []Item {
	out := make([]Item, len(b.items))
	copy(out, b.items)
	return out
}

// Fits reports whether the item can be placed without exceeding the
// bin's capacity. It has no side effects.
func (b *Bin) Fits(item Item) bool {
	return b.filled+item.size <= b.capacity
}

// append records the item and updates the running fill. Callers check
// Fits first; the sequential policy deliberately skips the check after
// advancing to a fresh bin.
func (b *Bin) append(item Item) {
	b.items = append(b.items, item)
	b.filled += item.size
}

func (b *Bin) String() string {
	sizes := make([]string, len(b.items))
	for idx, item := range b.items {
		sizes[idx] = fmt.Sprintf("%d", item.size)
	}
	return fmt.Sprintf("Bin(index=%d capacity=%d filled=%d unused=%d items=[%s])",
		b.index, b.capacity, b.filled, b.capacity-b.filled, strings.Join(sizes, " "))
}
