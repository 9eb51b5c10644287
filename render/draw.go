package render

import (
	"strconv"

	"github.com/vkngwrapper/heapviz/interact"
)

// Renderer is a drawing surface measured in the same display units as interact.Layout
type Renderer interface {
	// FillRect fills the provided region with a color
	FillRect(rect interact.Rect, color Color)
	// Label draws a short fixed string with its first glyph at the provided position
	Label(x, y int, label string)
	// Number draws a non-negative integer with its first digit at the provided position
	Number(x, y int, number int)
}

// Draw renders a frame: the blocks of the heap, the sbrk handle with any pending growth, and the
// menu of the selected block.
func Draw(r Renderer, frame interact.Frame, layout interact.Layout) {
	for _, view := range frame.Blocks {
		drawBlock(r, view)
	}

	if !frame.Growth.Empty() {
		r.FillRect(frame.Growth, ColorGrowth)
	}

	r.FillRect(frame.Handle, ColorHandle)
	r.Label(centered(frame.Handle, interact.LabelSbrk), frame.Handle.Y+frame.Handle.Height/2, interact.LabelSbrk)

	if frame.Menu != nil {
		drawMenu(r, frame.Menu, layout)
	}
}

func drawBlock(r Renderer, view interact.BlockView) {
	usedColor, headroomColor := blockColors(view.Block.Allocated, view.Selected)
	if !view.Block.Allocated || view.Block.Headroom() == 0 {
		r.FillRect(view.Rect, usedColor)
		return
	}

	usedWidth := view.Rect.Width * view.Block.Used / view.Block.Size
	used := view.Rect
	used.Width = usedWidth
	headroom := view.Rect
	headroom.X += usedWidth
	headroom.Width -= usedWidth

	if !used.Empty() {
		r.FillRect(used, usedColor)
	}
	r.FillRect(headroom, headroomColor)
}

func drawMenu(r Renderer, menu *interact.MenuView, layout interact.Layout) {
	if menu.Capturing {
		x, y := layout.PromptPosition()
		r.Label(x, y, interact.InputPrompt)
		r.Number(x, y+1, menu.Input)
		return
	}

	for _, button := range menu.Buttons {
		r.FillRect(button.Rect, ColorButton)
		r.Label(centered(button.Rect, button.Label), button.Rect.Y+button.Rect.Height/2, button.Label)
	}

	x, y := layout.InfoPosition()
	size := menu.Block.Size
	r.Number(x, y, size)
	r.Number(x+len(strconv.Itoa(size))+2, y, menu.Block.Used)
}

func centered(rect interact.Rect, label string) int {
	x := rect.X + (rect.Width-len(label))/2
	if x < rect.X {
		return rect.X
	}
	return x
}
