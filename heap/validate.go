package heap

import (
	"github.com/pkg/errors"
)

// Validatable is used by the DebugValidate method to allow it to act upon
// all types with a Validate method
type Validatable interface {
	Validate() error
}

var _ Validatable = &Heap{}

// Validate performs internal consistency checks on the heap: blocks must be non-empty, must
// partition [0, EndOfHeap) in address order, and must report a used byte count that fits in the
// block and is zero while the block is free. When the operations are functioning correctly it
// should not be possible for this method to return an error.
func (h *Heap) Validate() error {
	nextOffset := 0
	for i, block := range h.blocks {
		if block.Offset != nextOffset {
			return errors.Errorf("block %d starts at offset %d, but the previous block ends at offset %d", i, block.Offset, nextOffset)
		}

		if block.Size <= 0 {
			return errors.Errorf("block %d at offset %d has a size of %d", i, block.Offset, block.Size)
		}

		if block.Used < 0 || block.Used > block.Size {
			return errors.Errorf("block %d at offset %d reports %d used bytes but is %d bytes in size", i, block.Offset, block.Used, block.Size)
		}

		if !block.Allocated && block.Used != 0 {
			return errors.Errorf("block %d at offset %d is free but reports %d used bytes", i, block.Offset, block.Used)
		}

		nextOffset = block.End()
	}

	if nextOffset != h.endOfHeap {
		return errors.Errorf("the end of the heap is %d, but the blocks only add up to %d", h.endOfHeap, nextOffset)
	}

	return nil
}
