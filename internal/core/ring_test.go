package core

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRing_AppendBelowCapacity(t *testing.T) {
	req := require.New(t)
	r := NewRing[int](5)

	r.Append(1)
	r.Append(2)
	r.Append(3)

	req.Equal(3, r.Len())
	req.Equal([]int{1, 2, 3}, r.Items())
}

func TestRing_EvictsOldestFirst(t *testing.T) {
	req := require.New(t)
	r := NewRing[string](3)

	// Given more appends than capacity
	for i := 1; i <= 7; i++ {
		r.Append(fmt.Sprintf("m%d", i))
	}

	// Then only the most recent N remain, in arrival order
	req.Equal(3, r.Len())
	req.Equal([]string{"m5", "m6", "m7"}, r.Items())
}

func TestRing_Tail(t *testing.T) {
	req := require.New(t)
	r := NewRing[int](10)
	for i := 1; i <= 6; i++ {
		r.Append(i)
	}

	req.Equal([]int{5, 6}, r.Tail(2))
	req.Equal([]int{1, 2, 3, 4, 5, 6}, r.Tail(100))
	req.Empty(r.Tail(0))
}

func TestRing_ItemsIsACopy(t *testing.T) {
	req := require.New(t)
	r := NewRing[int](3)
	r.Append(1)
	r.Append(2)

	items := r.Items()
	items[0] = 99

	req.Equal([]int{1, 2}, r.Items())
}
