package heap

import "math"

type Statistics struct {
	BlockCount      int
	AllocationCount int
	HeapBytes       int
	AllocationBytes int
	UsedBytes       int
}

func (s *Statistics) Clear() {
	s.BlockCount = 0
	s.AllocationCount = 0
	s.HeapBytes = 0
	s.AllocationBytes = 0
	s.UsedBytes = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.BlockCount += other.BlockCount
	s.AllocationCount += other.AllocationCount
	s.HeapBytes += other.HeapBytes
	s.AllocationBytes += other.AllocationBytes
	s.UsedBytes += other.UsedBytes
}

// FreeBytes returns the number of bytes in free blocks
func (s *Statistics) FreeBytes() int {
	return s.HeapBytes - s.AllocationBytes
}

// InternalFragmentation returns the number of bytes inside allocated blocks that their
// occupants did not ask for
func (s *Statistics) InternalFragmentation() int {
	return s.AllocationBytes - s.UsedBytes
}

type DetailedStatistics struct {
	Statistics
	FreeRangeCount    int
	AllocationSizeMin int
	AllocationSizeMax int
	FreeRangeSizeMin  int
	FreeRangeSizeMax  int
}

func (s *DetailedStatistics) Clear() {
	s.Statistics.Clear()
	s.FreeRangeCount = 0
	s.AllocationSizeMin = math.MaxInt
	s.AllocationSizeMax = 0
	s.FreeRangeSizeMin = math.MaxInt
	s.FreeRangeSizeMax = 0
}

func (s *DetailedStatistics) AddFreeRange(size int) {
	s.FreeRangeCount++

	if size < s.FreeRangeSizeMin {
		s.FreeRangeSizeMin = size
	}

	if size > s.FreeRangeSizeMax {
		s.FreeRangeSizeMax = size
	}
}

func (s *DetailedStatistics) AddAllocation(size, used int) {
	s.AllocationCount++
	s.AllocationBytes += size
	s.UsedBytes += used

	if size < s.AllocationSizeMin {
		s.AllocationSizeMin = size
	}

	if size > s.AllocationSizeMax {
		s.AllocationSizeMax = size
	}
}

func (s *DetailedStatistics) AddDetailedStatistics(other *DetailedStatistics) {
	s.Statistics.AddStatistics(&other.Statistics)
	s.FreeRangeCount += other.FreeRangeCount

	if other.FreeRangeSizeMin < s.FreeRangeSizeMin {
		s.FreeRangeSizeMin = other.FreeRangeSizeMin
	}

	if other.FreeRangeSizeMax > s.FreeRangeSizeMax {
		s.FreeRangeSizeMax = other.FreeRangeSizeMax
	}

	if other.AllocationSizeMin < s.AllocationSizeMin {
		s.AllocationSizeMin = other.AllocationSizeMin
	}

	if other.AllocationSizeMax > s.AllocationSizeMax {
		s.AllocationSizeMax = other.AllocationSizeMax
	}
}

// AddStatistics sums this heap's statistics into the statistics currently present in the
// provided Statistics object.
func (h *Heap) AddStatistics(stats *Statistics) {
	stats.BlockCount += len(h.blocks)
	stats.HeapBytes += h.endOfHeap

	for _, block := range h.blocks {
		if block.Allocated {
			stats.AllocationCount++
			stats.AllocationBytes += block.Size
			stats.UsedBytes += block.Used
		}
	}
}

// AddDetailedStatistics sums this heap's statistics, including the size ranges of allocations
// and free blocks, into the statistics currently present in the provided DetailedStatistics object.
func (h *Heap) AddDetailedStatistics(stats *DetailedStatistics) {
	stats.BlockCount += len(h.blocks)
	stats.HeapBytes += h.endOfHeap

	for _, block := range h.blocks {
		if block.Allocated {
			stats.AddAllocation(block.Size, block.Used)
		} else {
			stats.AddFreeRange(block.Size)
		}
	}
}
