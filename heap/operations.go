package heap

import (
	cerrors "github.com/cockroachdb/errors"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

// Grow moves the break up to newBreak, the way sbrk would, and appends one free block covering
// [EndOfHeap, newBreak). It returns InvalidGrowError if newBreak is not above the current break.
func (h *Heap) Grow(newBreak int) error {
	if newBreak <= h.endOfHeap {
		h.logger.Debug("Heap::Grow REJECTED", slog.Int("EndOfHeap", h.endOfHeap), slog.Int("NewBreak", newBreak))
		return cerrors.Wrapf(InvalidGrowError, "break %d is not above %d", newBreak, h.endOfHeap)
	}

	h.logger.Debug("Heap::Grow", slog.Int("EndOfHeap", h.endOfHeap), slog.Int("NewBreak", newBreak))

	h.blocks = append(h.blocks, Block{
		Offset: h.endOfHeap,
		Size:   newBreak - h.endOfHeap,
	})
	h.endOfHeap = newBreak

	DebugValidate(h)
	return nil
}

// Allocate marks the free block at index as in use by an occupant of requestedBytes. The block's
// offset and size do not change, so size - requestedBytes remains visible as headroom.
func (h *Heap) Allocate(index int, requestedBytes int) error {
	if err := h.checkIndex(index); err != nil {
		return err
	}

	block := &h.blocks[index]
	if block.Allocated {
		h.logger.Debug("Heap::Allocate REJECTED", slog.Int("Index", index), slog.String("Reason", "allocated"))
		return cerrors.Wrapf(AlreadyAllocatedError, "block %d at offset %d", index, block.Offset)
	}

	if err := CheckNonNegative(requestedBytes, "requested bytes"); err != nil {
		h.logger.Debug("Heap::Allocate REJECTED", slog.Int("Index", index), slog.Int("Size", requestedBytes))
		return err
	}

	if requestedBytes > block.Size {
		h.logger.Debug("Heap::Allocate REJECTED", slog.Int("Index", index), slog.Int("Size", requestedBytes))
		return cerrors.Wrapf(InsufficientSpaceError, "requested %d bytes from a block of %d bytes", requestedBytes, block.Size)
	}

	h.logger.Debug("Heap::Allocate", slog.Int("Index", index), slog.Int("Size", requestedBytes))

	block.Allocated = true
	block.Used = requestedBytes

	DebugValidate(h)
	return nil
}

// Free returns the block at index to the free state. Free never coalesces; merging neighbors
// is always an explicit Coalesce.
func (h *Heap) Free(index int) error {
	if err := h.checkIndex(index); err != nil {
		return err
	}

	block := &h.blocks[index]
	if !block.Allocated {
		h.logger.Debug("Heap::Free REJECTED", slog.Int("Index", index))
		return cerrors.Wrapf(NotAllocatedError, "block %d at offset %d", index, block.Offset)
	}

	h.logger.Debug("Heap::Free", slog.Int("Index", index), slog.Int("Used", block.Used))

	block.Allocated = false
	block.Used = 0

	DebugValidate(h)
	return nil
}

// Split carves newRightSize bytes off the right end of the block at index and inserts them as a
// new free block directly after it. The original block keeps its offset and occupancy and shrinks
// to size - newRightSize.
//
// It returns BelowMinimumSizeError if newRightSize is below MinBlockSize, and ExceedsAvailableError
// if newRightSize is more than the block's available bytes (size - used when allocated, size when
// free) or would leave the original block empty.
func (h *Heap) Split(index int, newRightSize int) error {
	if err := h.checkIndex(index); err != nil {
		return err
	}

	block := h.blocks[index]
	if newRightSize < h.minBlockSize {
		h.logger.Debug("Heap::Split REJECTED", slog.Int("Index", index), slog.Int("Size", newRightSize))
		return cerrors.Wrapf(BelowMinimumSizeError, "%d bytes is below the minimum of %d", newRightSize, h.minBlockSize)
	}

	if newRightSize > block.Available() {
		h.logger.Debug("Heap::Split REJECTED", slog.Int("Index", index), slog.Int("Size", newRightSize))
		return cerrors.Wrapf(ExceedsAvailableError, "%d bytes requested but only %d are available", newRightSize, block.Available())
	}

	if newRightSize >= block.Size {
		h.logger.Debug("Heap::Split REJECTED", slog.Int("Index", index), slog.Int("Size", newRightSize))
		return cerrors.Wrapf(ExceedsAvailableError, "%d bytes would leave the %d byte block empty", newRightSize, block.Size)
	}

	h.logger.Debug("Heap::Split", slog.Int("Index", index), slog.Int("Offset", block.Offset), slog.Int("Size", newRightSize))

	right := Block{
		Offset: block.End() - newRightSize,
		Size:   newRightSize,
	}
	h.blocks[index].Size -= newRightSize
	h.blocks = slices.Insert(h.blocks, index+1, right)

	DebugValidate(h)
	return nil
}

// Coalesce merges the free block at rightIndex into the free block at leftIndex. The left block
// keeps its offset and absorbs the right block's size; the right block is removed, so every index
// at or beyond rightIndex shifts down by one.
func (h *Heap) Coalesce(leftIndex, rightIndex int) error {
	if rightIndex != leftIndex+1 {
		h.logger.Debug("Heap::Coalesce REJECTED", slog.Int("Left", leftIndex), slog.Int("Right", rightIndex))
		return cerrors.Wrapf(NotAdjacentError, "blocks %d and %d", leftIndex, rightIndex)
	}

	if err := h.checkIndex(leftIndex); err != nil {
		return err
	}
	if err := h.checkIndex(rightIndex); err != nil {
		return err
	}

	left, right := h.blocks[leftIndex], h.blocks[rightIndex]
	if left.Allocated || right.Allocated {
		h.logger.Debug("Heap::Coalesce REJECTED", slog.Int("Left", leftIndex), slog.Int("Right", rightIndex))
		return cerrors.Wrapf(BlockAllocatedError, "blocks %d and %d", leftIndex, rightIndex)
	}

	h.logger.Debug("Heap::Coalesce", slog.Int("Left", leftIndex), slog.Int("Offset", left.Offset), slog.Int("Size", left.Size+right.Size))

	h.blocks[leftIndex].Size += right.Size
	h.blocks = slices.Delete(h.blocks, rightIndex, rightIndex+1)

	DebugValidate(h)
	return nil
}
