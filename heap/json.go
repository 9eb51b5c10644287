package heap

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

const (
	blockTypeFree      = "FREE"
	blockTypeAllocated = "ALLOCATED"
)

// BlockJsonData populates a json object with summary information about this heap
func (h *Heap) BlockJsonData(json *jwriter.ObjectState) {
	var stats DetailedStatistics
	stats.Clear()
	h.AddDetailedStatistics(&stats)

	json.Name("TotalBytes").Int(stats.HeapBytes)
	json.Name("UnusedBytes").Int(stats.FreeBytes())
	json.Name("UsedBytes").Int(stats.UsedBytes)
	json.Name("Allocations").Int(stats.AllocationCount)
	json.Name("UnusedRanges").Int(stats.FreeRangeCount)
}

// PrintDetailedMap writes a json object describing the heap and every block in address order
func (h *Heap) PrintDetailedMap(writer *jwriter.Writer) {
	objState := writer.Object()
	defer objState.End()

	h.BlockJsonData(&objState)

	arrayState := objState.Name("Blocks").Array()
	defer arrayState.End()

	_ = h.VisitAllBlocks(func(index int, block Block) error {
		obj := arrayState.Object()
		defer obj.End()

		obj.Name("Offset").Int(block.Offset)
		if block.Allocated {
			obj.Name("Type").String(blockTypeAllocated)
			obj.Name("Size").Int(block.Size)
			obj.Name("Used").Int(block.Used)
		} else {
			obj.Name("Type").String(blockTypeFree)
			obj.Name("Size").Int(block.Size)
		}

		return nil
	})
}

// DetailedMap returns the output of PrintDetailedMap as json bytes
func (h *Heap) DetailedMap() ([]byte, error) {
	writer := jwriter.NewWriter()
	h.PrintDetailedMap(&writer)
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return writer.Bytes(), nil
}
