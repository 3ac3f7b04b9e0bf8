package harness

import (
	"encoding/hex"
	"hash"
	"hashbench/digest"
	"hashbench/input"

	"github.com/pkg/errors"
)

// Seed is the seed type an algorithm accepts natively. The harness seed is
// a uint32 and is widened as needed.
type Seed interface {
	~uint32 | ~uint64
}

// Invocation is the single entry point every algorithm is adapted to.
type Invocation[B any, R any] func(buf B, seed uint32) R

// SliceFunc hashes a whole buffer at once.
type SliceFunc[S Seed, R any] func(data []byte, seed S) R

// CursorFunc consumes a positioned stream and may fail, e.g. on a short
// read.
type CursorFunc[S Seed, R any] func(c *input.Cursor, seed S) (R, error)

func RunSlice[S Seed, R any](data []byte, seed uint32, fn SliceFunc[S, R]) R {
	return fn(data, S(seed))
}

// RunCursor captures the error of fn in the result instead of returning it.
func RunCursor[S Seed, R any](c *input.Cursor, seed uint32, fn CursorFunc[S, R]) digest.Result[R] {
	v, err := fn(c, S(seed))
	return digest.From(v, err)
}

// RunDigest feeds the whole buffer to a fresh hash in one Write and returns
// the hex of its sum.
func RunDigest[H hash.Hash](data []byte, newHash func() H) string {
	h := newHash()
	if _, err := h.Write(data); err != nil {
		panic(errors.Wrap(err, "hash.Hash promises to never return a write error"))
	}
	return hex.EncodeToString(h.Sum(nil))
}
