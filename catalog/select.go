package catalog

import (
	"hashbench/harness"
	"strings"

	iradix "github.com/hashicorp/go-immutable-radix"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Index maps algorithm names to their catalog position.
type Index struct {
	tree  *iradix.Tree
	algos []harness.Algorithm
}

// NewIndex indexes algos by name. Names must be unique.
func NewIndex(algos []harness.Algorithm) (*Index, error) {
	txn := iradix.New().Txn()
	for i, a := range algos {
		if _, dup := txn.Insert([]byte(a.Name), i); dup {
			return nil, errors.Errorf("duplicate algorithm name %q", a.Name)
		}
	}
	return &Index{tree: txn.Commit(), algos: algos}, nil
}

func (x *Index) Len() int {
	return x.tree.Len()
}

func (x *Index) Lookup(name string) (harness.Algorithm, bool) {
	v, ok := x.tree.Get([]byte(name))
	if !ok {
		return harness.Algorithm{}, false
	}
	return x.algos[v.(int)], true
}

// Prefix returns the algorithms whose name starts with any of prefixes, in
// catalog order. An empty prefix matches everything.
func (x *Index) Prefix(prefixes ...string) []harness.Algorithm {
	var positions []int
	for _, p := range prefixes {
		x.tree.Root().WalkPrefix([]byte(p), func(_ []byte, v interface{}) bool {
			positions = append(positions, v.(int))
			return false
		})
	}
	slices.Sort(positions)
	positions = slices.Compact(positions)

	out := make([]harness.Algorithm, 0, len(positions))
	for _, i := range positions {
		out = append(out, x.algos[i])
	}
	return out
}

// Select parses a comma-separated prefix filter against the catalog. An
// empty filter selects the whole catalog; a filter matching nothing is an
// error.
func Select(filter string) ([]harness.Algorithm, error) {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return All(), nil
	}
	x, err := NewIndex(algorithms)
	if err != nil {
		return nil, err
	}
	var prefixes []string
	for _, p := range strings.Split(filter, ",") {
		if p = strings.TrimSpace(p); p != "" {
			prefixes = append(prefixes, p)
		}
	}
	selected := x.Prefix(prefixes...)
	if len(selected) == 0 {
		return nil, errors.Errorf("filter %q matches no algorithm", filter)
	}
	return selected, nil
}
