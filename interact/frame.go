package interact

import "github.com/vkngwrapper/heapviz/heap"

// BlockView is a block together with where it is drawn
type BlockView struct {
	Index    int
	Block    heap.Block
	Rect     Rect
	Selected bool
}

// MenuView describes the open block menu. While Capturing is true the buttons are replaced by
// the input prompt and the pending value.
type MenuView struct {
	Index   int
	Block   heap.Block
	Buttons []MenuButton

	Capturing bool
	Mode      CaptureMode
	Input     int
}

// Frame is a read-only snapshot of everything a renderer needs to draw the current state
type Frame struct {
	Blocks []BlockView

	EndOfHeap    int
	PendingBreak int
	Dragging     bool
	Handle       Rect
	Growth       Rect

	// Menu is nil when no block is selected
	Menu *MenuView
}

// Frame captures the current state of the model and the controller
func (c *Controller) Frame() Frame {
	blocks := c.model.Blocks()
	end := c.model.EndOfHeap()
	pending := c.PendingBreak()
	placement := c.layout.Place(blocks, end, pending)

	frame := Frame{
		Blocks:       make([]BlockView, 0, len(blocks)),
		EndOfHeap:    end,
		PendingBreak: pending,
		Dragging:     c.dragging,
		Handle:       placement.Handle,
		Growth:       placement.Growth,
	}

	for i, block := range blocks {
		frame.Blocks = append(frame.Blocks, BlockView{
			Index:    i,
			Block:    block,
			Rect:     placement.Blocks[i],
			Selected: i == c.selected,
		})
	}

	if block, ok := c.selectedBlock(); ok {
		menu := &MenuView{
			Index:     c.selected,
			Block:     block,
			Capturing: c.capture.Active(),
			Mode:      c.capture.Mode(),
			Input:     c.capture.Value(),
		}
		if !menu.Capturing {
			menu.Buttons = c.layout.MenuButtons(block)
		}
		frame.Menu = menu
	}

	return frame
}
