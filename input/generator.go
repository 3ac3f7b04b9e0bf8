// Package input produces the deterministic byte buffers every benchmark
// case hashes. A buffer is regenerated for each case execution.
package input

import (
	"hashbench/errutil"

	"golang.org/x/exp/rand"
)

// TestVector is returned for a requested size of zero, whatever the seed.
const TestVector = "1234567890abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Shape is the form in which a buffer is handed to an algorithm.
type Shape int

const (
	ShapeSlice Shape = iota
	ShapeCursor
)

func (s Shape) String() string {
	switch s {
	case ShapeSlice:
		return "slice"
	case ShapeCursor:
		return "cursor"
	default:
		return "unknown"
	}
}

// Generator builds one buffer of type B for a (size, seed) pair.
type Generator[B any] func(size int, seed uint32) B

// Generate returns size pseudo-random bytes derived from seed, or a copy
// of TestVector when size is zero. The same (size, seed) always yields the
// same bytes.
func Generate(size int, seed uint32) []byte {
	errutil.BugOn(size < 0, "size must be non-negative, got %d", size)
	if size == 0 {
		return []byte(TestVector)
	}
	buf := make([]byte, size)
	r := rand.New(rand.NewSource(uint64(seed)))
	_, _ = r.Read(buf)
	return buf
}
