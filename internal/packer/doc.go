// Package packer assigns sized items to fixed-capacity bins. Items are
// grouped by size before placement, and two placement policies are
// available: sequential first-fit and even round-robin distribution.
package packer
