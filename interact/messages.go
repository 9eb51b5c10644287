package interact

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/heapviz/heap"
)

var errorMessages = []struct {
	err     error
	message string
}{
	{heap.InvalidGrowError, "sbrk can only move the break past the end of the heap"},
	{heap.AlreadyAllocatedError, "that block is already allocated"},
	{heap.NotAllocatedError, "that block is already free"},
	{heap.InvalidSizeError, "the number of bytes cannot be negative"},
	{heap.InsufficientSpaceError, "the block is too small for that many bytes"},
	{heap.BelowMinimumSizeError, "the new block would be too small to draw"},
	{heap.ExceedsAvailableError, "the block does not have that many unused bytes to split off"},
	{heap.NotAdjacentError, "only neighboring blocks can be coalesced"},
	{heap.BlockAllocatedError, "free both blocks before coalescing them"},
	{heap.InvalidBlockError, "there is no block there"},
}

// Message returns the user-facing text for an error returned by a heap operation. Every error
// kind maps to its own message; unrecognized errors are reported with their own text.
func Message(err error) string {
	for _, entry := range errorMessages {
		if errors.Is(err, entry.err) {
			return entry.message
		}
	}
	return err.Error()
}
