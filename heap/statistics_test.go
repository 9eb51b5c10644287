package heap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/heapviz/heap"
)

func fragmentedHeap(t *testing.T) *heap.Heap {
	h := grownHeap(t, 100, 200)
	require.NoError(t, h.Split(0, 40))
	require.NoError(t, h.Allocate(0, 50))
	require.NoError(t, h.Allocate(2, 64))
	return h
}

func TestStatistics(t *testing.T) {
	h := fragmentedHeap(t)

	var stats heap.Statistics
	h.AddStatistics(&stats)

	require.Equal(t, heap.Statistics{
		BlockCount:      3,
		AllocationCount: 2,
		HeapBytes:       200,
		AllocationBytes: 160,
		UsedBytes:       114,
	}, stats)
	require.Equal(t, 40, stats.FreeBytes())
	require.Equal(t, 46, stats.InternalFragmentation())

	stats.Clear()
	require.Zero(t, stats)
}

func TestStatisticsAccumulate(t *testing.T) {
	var stats heap.Statistics
	fragmentedHeap(t).AddStatistics(&stats)
	grownHeap(t, 10).AddStatistics(&stats)

	require.Equal(t, 4, stats.BlockCount)
	require.Equal(t, 210, stats.HeapBytes)
	require.Equal(t, 50, stats.FreeBytes())
}

func TestDetailedStatistics(t *testing.T) {
	h := fragmentedHeap(t)

	var stats heap.DetailedStatistics
	stats.Clear()
	h.AddDetailedStatistics(&stats)

	require.Equal(t, 3, stats.BlockCount)
	require.Equal(t, 2, stats.AllocationCount)
	require.Equal(t, 1, stats.FreeRangeCount)
	require.Equal(t, 60, stats.AllocationSizeMin)
	require.Equal(t, 100, stats.AllocationSizeMax)
	require.Equal(t, 40, stats.FreeRangeSizeMin)
	require.Equal(t, 40, stats.FreeRangeSizeMax)
}

func TestDetailedStatisticsEmptyHeap(t *testing.T) {
	var stats heap.DetailedStatistics
	stats.Clear()
	heap.New(heap.Options{}).AddDetailedStatistics(&stats)

	require.Zero(t, stats.BlockCount)
	require.Equal(t, math.MaxInt, stats.AllocationSizeMin)
	require.Equal(t, math.MaxInt, stats.FreeRangeSizeMin)
}

func TestAddDetailedStatistics(t *testing.T) {
	var left, right heap.DetailedStatistics
	left.Clear()
	right.Clear()

	fragmentedHeap(t).AddDetailedStatistics(&left)
	grownHeap(t, 8).AddDetailedStatistics(&right)

	left.AddDetailedStatistics(&right)

	require.Equal(t, 4, left.BlockCount)
	require.Equal(t, 2, left.FreeRangeCount)
	require.Equal(t, 8, left.FreeRangeSizeMin)
	require.Equal(t, 40, left.FreeRangeSizeMax)
	require.Equal(t, 60, left.AllocationSizeMin)
}
