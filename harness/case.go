package harness

import (
	"hash"
	"hashbench/digest"
	"hashbench/input"
	"time"
)

// Case binds one algorithm to one input size and seed. It is built for a
// single execution and never modified.
type Case[B any, R any] struct {
	Name      string
	Size      int
	Seed      uint32
	Generate  input.Generator[B]
	Invoke    Invocation[B, R]
	Normalize func(R) string
}

// Runner is a bound case ready to be measured.
type Runner interface {
	Run() Stat
}

// Run generates a fresh buffer and times exactly one invocation. Input
// generation and normalization are outside the timed window.
func (c Case[B, R]) Run() Stat {
	buf := c.Generate(c.Size, c.Seed)
	start := time.Now()
	res := c.Invoke(buf, c.Seed)
	duration := time.Since(start)
	return Stat{
		Name:     c.Name,
		Size:     c.Size,
		Seed:     c.Seed,
		Duration: duration,
		Result:   c.Normalize(res),
	}
}

// Execute measures r once.
func Execute(r Runner) Stat {
	return r.Run()
}

// Algorithm is a catalog entry: a named hash function in one of the
// supported calling conventions.
type Algorithm struct {
	Name  string
	Shape input.Shape
	bind  func(name string, size int, seed uint32) Runner
}

// Bind builds a fresh case of a for (size, seed).
func (a Algorithm) Bind(size int, seed uint32) Runner {
	return a.bind(a.Name, size, seed)
}

// NewSlice adapts a whole-buffer function returning an integer.
func NewSlice[S Seed, R digest.LowerHex](name string, fn SliceFunc[S, R]) Algorithm {
	return Algorithm{
		Name:  name,
		Shape: input.ShapeSlice,
		bind: func(name string, size int, seed uint32) Runner {
			return Case[[]byte, R]{
				Name:      name,
				Size:      size,
				Seed:      seed,
				Generate:  input.Generate,
				Invoke:    func(data []byte, seed uint32) R { return RunSlice(data, seed, fn) },
				Normalize: digest.Hex[R],
			}
		},
	}
}

// NewSliceString adapts a whole-buffer function that already returns a
// formatted digest.
func NewSliceString[S Seed](name string, fn SliceFunc[S, string]) Algorithm {
	return Algorithm{
		Name:  name,
		Shape: input.ShapeSlice,
		bind: func(name string, size int, seed uint32) Runner {
			return Case[[]byte, string]{
				Name:      name,
				Size:      size,
				Seed:      seed,
				Generate:  input.Generate,
				Invoke:    func(data []byte, seed uint32) string { return RunSlice(data, seed, fn) },
				Normalize: digest.Passthrough,
			}
		},
	}
}

// NewCursor adapts a streaming function. Its failures end up in the Stat
// result text.
func NewCursor[S Seed, R digest.LowerHex](name string, fn CursorFunc[S, R]) Algorithm {
	return Algorithm{
		Name:  name,
		Shape: input.ShapeCursor,
		bind: func(name string, size int, seed uint32) Runner {
			return Case[*input.Cursor, digest.Result[R]]{
				Name:     name,
				Size:     size,
				Seed:     seed,
				Generate: input.NewCursor,
				Invoke: func(c *input.Cursor, seed uint32) digest.Result[R] {
					return RunCursor(c, seed, fn)
				},
				Normalize: digest.HexResult[R],
			}
		},
	}
}

// NewDigest adapts an incremental hash. The seed is not used.
func NewDigest[H hash.Hash](name string, newHash func() H) Algorithm {
	return Algorithm{
		Name:  name,
		Shape: input.ShapeSlice,
		bind: func(name string, size int, seed uint32) Runner {
			return Case[[]byte, string]{
				Name:      name,
				Size:      size,
				Seed:      seed,
				Generate:  input.Generate,
				Invoke:    func(data []byte, _ uint32) string { return RunDigest(data, newHash) },
				Normalize: digest.Passthrough,
			}
		},
	}
}
