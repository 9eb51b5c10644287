package render

import (
	"fmt"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"
	"github.com/vkngwrapper/heapviz/interact"
)

const (
	DefaultUnitWidth  = 10
	DefaultUnitHeight = 20
)

// SVG is a Renderer that writes an SVG document. Display units are scaled to UnitWidth by
// UnitHeight pixels. Call Start before drawing and End once the frame is complete.
type SVG struct {
	canvas *svg.SVG

	UnitWidth  int
	UnitHeight int
}

var _ Renderer = &SVG{}

// NewSVG creates an SVG renderer writing to w with the default unit size
func NewSVG(w io.Writer) *SVG {
	return &SVG{
		canvas:     svg.New(w),
		UnitWidth:  DefaultUnitWidth,
		UnitHeight: DefaultUnitHeight,
	}
}

// Start opens a document of the provided size in units and fills it with ColorBackground
func (s *SVG) Start(width, height int) {
	pixelWidth, pixelHeight := width*s.UnitWidth, height*s.UnitHeight
	s.canvas.Start(pixelWidth, pixelHeight)
	s.canvas.Title("Heap layout")
	s.canvas.Rect(0, 0, pixelWidth, pixelHeight, fill(ColorBackground))
	s.canvas.Gstyle(fmt.Sprintf("font-family:monospace;font-size:%dpx", s.UnitHeight*3/4))
}

// End closes the document
func (s *SVG) End() {
	s.canvas.Gend()
	s.canvas.End()
}

func fill(color Color) string {
	return "fill:" + Palette[color]
}

func (s *SVG) FillRect(rect interact.Rect, color Color) {
	if rect.Empty() {
		return
	}
	s.canvas.Rect(rect.X*s.UnitWidth, rect.Y*s.UnitHeight, rect.Width*s.UnitWidth, rect.Height*s.UnitHeight, fill(color))
}

func (s *SVG) Label(x, y int, label string) {
	// text is anchored on its baseline
	s.canvas.Text(x*s.UnitWidth, (y+1)*s.UnitHeight-s.UnitHeight/4, label, "fill:#000000")
}

func (s *SVG) Number(x, y int, number int) {
	s.Label(x, y, strconv.Itoa(number))
}

// WriteSVG draws a single frame into a complete SVG document of the provided size in units
func WriteSVG(w io.Writer, frame interact.Frame, layout interact.Layout, width, height int) {
	s := NewSVG(w)
	s.Start(width, height)
	Draw(s, frame, layout)
	s.End()
}
