// Package digest turns the raw output of a hash function into the single
// text field carried by a benchmark Stat.
//
// Integer checksums become lowercase hex without a 0x prefix, 128-bit
// results become one 32-digit-max hex number, byte digests and string
// digests pass through untouched and failed computations render their
// error.
package digest

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Uint128 is a 128-bit hash value split in two halves.
type Uint128 struct {
	Hi, Lo uint64
}

// Format prints the value as one number for the x and X verbs, so
// Uint128{Hi: 1, Lo: 2} is "10000000000000002" and the zero value is "0".
func (u Uint128) Format(f fmt.State, verb rune) {
	switch verb {
	case 'x', 'X':
		lead, tail := "%x", "%016x"
		if verb == 'X' {
			lead, tail = "%X", "%016X"
		}
		if u.Hi == 0 {
			fmt.Fprintf(f, lead, u.Lo)
			return
		}
		fmt.Fprintf(f, lead+tail, u.Hi, u.Lo)
	default:
		fmt.Fprintf(f, "{%d %d}", u.Hi, u.Lo)
	}
}

// LowerHex is the set of raw results that print as a single hex number.
type LowerHex interface {
	constraints.Unsigned | Uint128
}

func Hex[T LowerHex](v T) string {
	return fmt.Sprintf("%x", v)
}

// HexResult renders a successful result as Hex and a failed one with Debug.
func HexResult[T LowerHex](r Result[T]) string {
	v, err := r.Get()
	if err != nil {
		return Debug(err)
	}
	return Hex(v)
}

func Passthrough(s string) string {
	return s
}

// Debug renders err on one line as its root cause type and full message,
// e.g. *errors.errorString("read key: unexpected EOF").
func Debug(err error) string {
	if err == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T(%q)", errors.Cause(err), err.Error())
}
