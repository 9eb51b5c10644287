package heap_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/heapviz/heap"
)

func TestDetailedMap(t *testing.T) {
	h := grownHeap(t, 100)
	require.NoError(t, h.Split(0, 40))
	require.NoError(t, h.Allocate(1, 25))

	out, err := h.DetailedMap()
	require.NoError(t, err)
	require.JSONEq(t, `{
		"TotalBytes": 100,
		"UnusedBytes": 60,
		"UsedBytes": 25,
		"Allocations": 1,
		"UnusedRanges": 1,
		"Blocks": [
			{"Offset": 0, "Type": "FREE", "Size": 60},
			{"Offset": 60, "Type": "ALLOCATED", "Size": 40, "Used": 25}
		]
	}`, string(out))
}

func TestDetailedMapEmptyHeap(t *testing.T) {
	out, err := heap.New(heap.Options{}).DetailedMap()
	require.NoError(t, err)
	require.JSONEq(t, `{
		"TotalBytes": 0,
		"UnusedBytes": 0,
		"UsedBytes": 0,
		"Allocations": 0,
		"UnusedRanges": 0,
		"Blocks": []
	}`, string(out))
}
