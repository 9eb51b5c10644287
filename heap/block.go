package heap

// Block is a contiguous region of the simulated heap. Blocks are values: the Heap owns the
// sequence and hands out copies, so a Block never changes underneath its holder.
type Block struct {
	// Offset is the address of the first byte of the block
	Offset int
	// Size is the length of the block in bytes, always greater than zero
	Size int
	// Allocated is true while the block is in use
	Allocated bool
	// Used is the number of bytes the occupant asked for. It is 0 for free blocks.
	Used int
}

// End returns the address one past the last byte of the block
func (b Block) End() int { return b.Offset + b.Size }

// IsFree returns true if the block is not in use
func (b Block) IsFree() bool { return !b.Allocated }

// Headroom returns the bytes of an allocated block that the occupant did not ask for, i.e.
// the block's internal fragmentation. A free block has no headroom.
func (b Block) Headroom() int {
	if !b.Allocated {
		return 0
	}
	return b.Size - b.Used
}

// Available returns the number of bytes a split may carve off the right end of the block
func (b Block) Available() int {
	if b.Allocated {
		return b.Size - b.Used
	}
	return b.Size
}
