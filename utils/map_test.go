package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	require.Equal(t, []string{"1", "2", "3"}, Map([]int{1, 2, 3}, strconv.Itoa))
	require.Empty(t, Map([]int{}, strconv.Itoa))
}

func TestFilter(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }
	require.Equal(t, []int{2, 4}, Filter([]int{1, 2, 3, 4, 5}, even))
	require.Empty(t, Filter(nil, even))
}
