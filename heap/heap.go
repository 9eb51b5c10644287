package heap

import (
	"io"

	"golang.org/x/exp/slog"
)

const (
	// DefaultMinBlockSize is the smallest block, in bytes, that a split may create when
	// Options.MinBlockSize is left at zero
	DefaultMinBlockSize = 6
)

// Options configures a new Heap
type Options struct {
	// MinBlockSize is the smallest block a split may create. Zero selects DefaultMinBlockSize.
	MinBlockSize int
	// Logger receives debug output for every operation. A nil Logger discards it.
	Logger *slog.Logger
}

// Heap is a simulated heap: an address-ordered sequence of blocks that partitions
// [0, EndOfHeap) without gaps or overlaps. The heap only grows, one sbrk at a time.
//
// Heap is not safe for concurrent use. Every operation either succeeds completely or returns
// an error and leaves the block sequence untouched.
type Heap struct {
	logger       *slog.Logger
	minBlockSize int

	blocks    []Block
	endOfHeap int
}

// New creates an empty Heap whose break sits at address 0
func New(options Options) *Heap {
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	minBlockSize := options.MinBlockSize
	if minBlockSize <= 0 {
		minBlockSize = DefaultMinBlockSize
	}

	return &Heap{
		logger:       logger,
		minBlockSize: minBlockSize,
	}
}

// EndOfHeap returns the current break address
func (h *Heap) EndOfHeap() int { return h.endOfHeap }

// MinBlockSize returns the smallest block a split may create
func (h *Heap) MinBlockSize() int { return h.minBlockSize }

// Len returns the number of blocks in the heap
func (h *Heap) Len() int { return len(h.blocks) }

// IsEmpty returns true if the heap has never been grown
func (h *Heap) IsEmpty() bool { return len(h.blocks) == 0 }

// Block returns a copy of the block at the provided index. The boolean is false if the
// index does not refer to a block.
func (h *Heap) Block(index int) (Block, bool) {
	if index < 0 || index >= len(h.blocks) {
		return Block{}, false
	}
	return h.blocks[index], true
}

// Blocks returns a copy of the block sequence in address order
func (h *Heap) Blocks() []Block {
	blocks := make([]Block, len(h.blocks))
	copy(blocks, h.blocks)
	return blocks
}

// VisitAllBlocks calls the provided callback once for each block in address order. Visiting stops
// at the first error returned by the callback, and that error is returned.
func (h *Heap) VisitAllBlocks(visit func(index int, block Block) error) error {
	for i, block := range h.blocks {
		if err := visit(i, block); err != nil {
			return err
		}
	}
	return nil
}

// BlockAt returns the index of the block containing the provided address, or -1 if the
// address lies outside the heap
func (h *Heap) BlockAt(address int) int {
	if address < 0 || address >= h.endOfHeap {
		return -1
	}

	low, high := 0, len(h.blocks)-1
	for low <= high {
		mid := (low + high) / 2
		block := h.blocks[mid]
		switch {
		case address < block.Offset:
			high = mid - 1
		case address >= block.End():
			low = mid + 1
		default:
			return mid
		}
	}

	return -1
}

func (h *Heap) checkIndex(index int) error {
	if index < 0 || index >= len(h.blocks) {
		return errBlockIndex(index, len(h.blocks))
	}
	return nil
}
