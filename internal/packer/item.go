package packer

import "fmt"

// Item is a sized unit waiting to be placed into a bin. The size is
// fixed at creation; two items of equal size are interchangeable for
// grouping purposes. The optional tag is opaque to the packer and is
// carried through placement untouched.
type Item struct {
	size int
	tag  string
}

// NewItem creates an item with the given unit size.
func NewItem(size int) Item {
	return Item{size: size}
}

// NewTaggedItem creates an item carrying an opaque caller tag.
func NewTaggedItem(size int, tag string) Item {
	return Item{size: size, tag: tag}
}

// Size returns the unit size of the item.
func (i Item) Size() int {
	return i.size
}

// Tag returns the tag supplied at creation, if any.
func (i Item) Tag() string {
	return i.tag
}

func (i Item) String() string {
	if i.tag != "" {
		return fmt.Sprintf("Item(size=%d tag=%q)", i.size, i.tag)
	}
	return fmt.Sprintf("Item(size=%d)", i.size)
}

// Items builds an item slice from plain sizes. It is a convenience for
// callers that have no per-item metadata to attach.
func Items(sizes ...int) []Item {
	out := make([]Item, len(sizes))
	for idx, size := range sizes {
		out[idx] = NewItem(size)
	}
	return out
}

// SumSizes returns the total unit size of the given items.
func SumSizes(items []Item) int {
	total := 0
	for _, item := range items {
		total += item.size
	}
	return total
}
