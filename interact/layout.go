package interact

import "github.com/vkngwrapper/heapviz/heap"

// Rect is an axis-aligned screen region measured in display units (terminal cells, pixels).
// A Rect with zero width or height contains nothing.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains returns true if the point lies inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty returns true if the rect covers no area
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Layout places the heap strip, the growth handle and the block menu on screen. The heap strip
// runs left to right from StripX, one display unit per BytesPerUnit bytes.
type Layout struct {
	BytesPerUnit int

	StripX      int
	StripY      int
	StripHeight int
	// BlockGap display units are trimmed from the right of every block wider than the gap, so
	// neighbors stay visually distinct
	BlockGap int

	HandleWidth int

	MenuX         int
	MenuY         int
	ButtonWidth   int
	ButtonHeight  int
	ButtonSpacing int
}

// DefaultLayout returns a layout for a terminal canvas with the provided byte scale
func DefaultLayout(bytesPerUnit int) Layout {
	return Layout{
		BytesPerUnit:  bytesPerUnit,
		StripX:        0,
		StripY:        0,
		StripHeight:   3,
		BlockGap:      1,
		HandleWidth:   6,
		MenuX:         0,
		MenuY:         5,
		ButtonWidth:   12,
		ButtonHeight:  1,
		ButtonSpacing: 1,
	}
}

// UnitAt returns the horizontal display position of the provided address
func (l Layout) UnitAt(address int) int {
	return l.StripX + address/l.BytesPerUnit
}

// DeltaBytes converts a horizontal pointer movement into a byte count
func (l Layout) DeltaBytes(dx int) int {
	return dx * l.BytesPerUnit
}

// BlockRect returns the screen region of the provided block. Every block is at least one unit wide.
func (l Layout) BlockRect(block heap.Block) Rect {
	x0 := l.UnitAt(block.Offset)
	width := l.UnitAt(block.End()) - x0
	if width > l.BlockGap {
		width -= l.BlockGap
	}
	if width < 1 {
		width = 1
	}

	return Rect{X: x0, Y: l.StripY, Width: width, Height: l.StripHeight}
}

// HandleRect returns the screen region of the growth handle while the break sits at the
// provided address
func (l Layout) HandleRect(breakAddress int) Rect {
	return Rect{X: l.UnitAt(breakAddress), Y: l.StripY, Width: l.HandleWidth, Height: l.StripHeight}
}

// GrowthRect returns the region between the committed end of the heap and a pending break.
// It is empty when nothing is pending.
func (l Layout) GrowthRect(endOfHeap, pendingBreak int) Rect {
	x0, x1 := l.UnitAt(endOfHeap), l.UnitAt(pendingBreak)
	if x1 <= x0 {
		return Rect{X: x0, Y: l.StripY, Height: l.StripHeight}
	}
	return Rect{X: x0, Y: l.StripY, Width: x1 - x0, Height: l.StripHeight}
}

// Placement holds the screen regions of a whole heap. Block rects never share a unit: a block
// that rounds onto a unit already taken by its left neighbor is pushed right, and the handle and
// growth preview move right by the same overflow.
type Placement struct {
	Blocks []Rect
	Handle Rect
	Growth Rect
}

// Place lays out every block of the heap in address order together with the growth handle
func (l Layout) Place(blocks []heap.Block, endOfHeap, pendingBreak int) Placement {
	placement := Placement{Blocks: make([]Rect, len(blocks))}

	next := l.StripX
	for i, block := range blocks {
		rect := l.BlockRect(block)
		if rect.X < next {
			rect.X = next
		}
		placement.Blocks[i] = rect
		next = rect.X + rect.Width
	}

	overflow := 0
	if end := l.UnitAt(endOfHeap); next > end {
		overflow = next - end
	}

	placement.Handle = l.HandleRect(pendingBreak)
	placement.Handle.X += overflow
	placement.Growth = l.GrowthRect(endOfHeap, pendingBreak)
	placement.Growth.X += overflow
	return placement
}

func (l Layout) buttonRect(row, column int) Rect {
	return Rect{
		X:      l.MenuX + column*(l.ButtonWidth+l.ButtonSpacing),
		Y:      l.MenuY + row*(l.ButtonHeight+l.ButtonSpacing),
		Width:  l.ButtonWidth,
		Height: l.ButtonHeight,
	}
}

// InfoPosition returns where the selected block's size and used byte counts are drawn
func (l Layout) InfoPosition() (x, y int) {
	return l.MenuX, l.MenuY + 3*(l.ButtonHeight+l.ButtonSpacing)
}

// PromptPosition returns where the numeric input prompt is drawn. The pending value is
// drawn one row below it.
func (l Layout) PromptPosition() (x, y int) {
	return l.MenuX, l.MenuY
}
