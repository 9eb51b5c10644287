package heap

import "github.com/pkg/errors"

// InvalidGrowError is returned from Heap.Grow if the requested break does not lie above the current
// end of the heap
var InvalidGrowError error = errors.New("new break must lie above the end of the heap")

// AlreadyAllocatedError is returned from Heap.Allocate if the target block is already in use
var AlreadyAllocatedError error = errors.New("block is already allocated")

// NotAllocatedError is returned from Heap.Free if the target block is already free
var NotAllocatedError error = errors.New("block is not allocated")

// InvalidSizeError is returned when a requested byte count is negative
var InvalidSizeError error = errors.New("requested size is invalid")

// InsufficientSpaceError is returned from Heap.Allocate if the request is larger than the block
var InsufficientSpaceError error = errors.New("block is too small for the requested size")

// BelowMinimumSizeError is returned from Heap.Split if the new block would be smaller than the
// heap's minimum block size
var BelowMinimumSizeError error = errors.New("block would be below the minimum block size")

// ExceedsAvailableError is returned from Heap.Split if the new block would carve into bytes that
// are not available in the target block
var ExceedsAvailableError error = errors.New("split exceeds the available bytes of the block")

// NotAdjacentError is returned from Heap.Coalesce if the two blocks are not neighbors
var NotAdjacentError error = errors.New("blocks are not adjacent")

// BlockAllocatedError is returned from Heap.Coalesce if either block is in use
var BlockAllocatedError error = errors.New("allocated blocks cannot be coalesced")

// InvalidBlockError is returned when a block index does not refer to a block of the heap
var InvalidBlockError error = errors.New("no such block")
