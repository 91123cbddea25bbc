package packer

import "errors"

var (
	// ErrInvalidItems is returned when an item has a non-positive size.
	ErrInvalidItems = errors.New("item sizes must be positive integers")
	// ErrInvalidCapacities is returned when the capacity list is empty or contains a non-positive entry.
	ErrInvalidCapacities = errors.New("capacities must contain at least one positive integer")
	// ErrInsufficientCapacity is returned when the total item size exceeds the combined capacity of the supplied bins.
	ErrInsufficientCapacity = errors.New("total item size exceeds total bin capacity")
	// ErrItemOverflow is returned by strict round-robin placement when an item does not fit its assigned bin.
	ErrItemOverflow = errors.New("item does not fit its assigned bin")
)
