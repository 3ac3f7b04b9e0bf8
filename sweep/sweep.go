// Package sweep drives the harness across an exponential ladder of input
// sizes, one full suite per size.
package sweep

import (
	"hashbench/harness"

	"github.com/pkg/errors"
)

// DefaultMaxExponent makes the ladder run from 1 byte to 16 MiB.
const DefaultMaxExponent = 24

// Sink receives every Stat, in suite order.
type Sink interface {
	Write(s harness.Stat) error
}

type SinkFunc func(s harness.Stat) error

func (f SinkFunc) Write(s harness.Stat) error {
	return f(s)
}

// Ladder returns the sizes 2^0 .. 2^maxExp.
func Ladder(maxExp int) []int {
	if maxExp < 0 {
		return nil
	}
	sizes := make([]int, 0, maxExp+1)
	for bit := 0; bit <= maxExp; bit++ {
		sizes = append(sizes, 1<<bit)
	}
	return sizes
}

// Plan is one sweep: every algorithm at every size with a single seed.
type Plan struct {
	Algorithms []harness.Algorithm
	Sizes      []int
	Seed       uint32
}

// Cases is the number of Stats the plan produces.
func (p Plan) Cases() int {
	return len(p.Algorithms) * len(p.Sizes)
}

// Run executes p and hands each Stat to all sinks. The first sink error
// aborts the sweep.
func Run(p Plan, sinks ...Sink) error {
	for _, size := range p.Sizes {
		for _, s := range harness.RunSuite(p.Algorithms, size, p.Seed) {
			for _, sink := range sinks {
				if err := sink.Write(s); err != nil {
					return errors.Wrapf(err, "sweep at size %d", size)
				}
			}
		}
	}
	return nil
}
