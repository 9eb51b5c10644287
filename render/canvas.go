package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/heapviz/interact"
)

type cell struct {
	glyph rune
	color Color
}

// Canvas is a Renderer over a grid of terminal cells. Every cell carries a background color and
// at most one glyph. Drawing outside the grid is clipped.
type Canvas struct {
	width  int
	height int
	cells  []cell

	styles *swiss.Map[Color, lipgloss.Style]
}

var _ Renderer = &Canvas{}

// NewCanvas creates a canvas of the provided size in cells, filled with ColorBackground
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		styles: swiss.NewMap[Color, lipgloss.Style](uint32(len(Palette))),
	}
	c.Resize(width, height)
	return c
}

// Resize discards the contents of the canvas and changes its size
func (c *Canvas) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	c.width = width
	c.height = height
	c.cells = make([]cell, width*height)
	c.Clear()
}

// Clear fills the canvas with ColorBackground and removes every glyph
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{glyph: ' ', color: ColorBackground}
	}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return nil
	}
	return &c.cells[y*c.width+x]
}

// FillRect sets the background of every cell in the rect and removes their glyphs
func (c *Canvas) FillRect(rect interact.Rect, color Color) {
	for y := rect.Y; y < rect.Y+rect.Height; y++ {
		for x := rect.X; x < rect.X+rect.Width; x++ {
			if target := c.at(x, y); target != nil {
				target.glyph = ' '
				target.color = color
			}
		}
	}
}

// Label writes the glyphs of label from left to right, keeping the background of each cell
func (c *Canvas) Label(x, y int, label string) {
	for _, glyph := range label {
		if target := c.at(x, y); target != nil {
			target.glyph = glyph
		}
		x++
	}
}

// Number writes the decimal digits of number
func (c *Canvas) Number(x, y int, number int) {
	c.Label(x, y, strconv.Itoa(number))
}

// ColorAt returns the background of the cell at the provided position
func (c *Canvas) ColorAt(x, y int) Color {
	if target := c.at(x, y); target != nil {
		return target.color
	}
	return ColorBackground
}

// Plain returns the glyphs of the canvas without colors, one line per row with trailing
// spaces removed
func (c *Canvas) Plain() string {
	lines := make([]string, c.height)
	for y := 0; y < c.height; y++ {
		var line strings.Builder
		for x := 0; x < c.width; x++ {
			line.WriteRune(c.cells[y*c.width+x].glyph)
		}
		lines[y] = strings.TrimRight(line.String(), " ")
	}
	return strings.Join(lines, "\n")
}

func (c *Canvas) style(color Color) lipgloss.Style {
	style, ok := c.styles.Get(color)
	if ok {
		return style
	}

	style = lipgloss.NewStyle().
		Background(lipgloss.Color(Palette[color])).
		Foreground(lipgloss.Color("#000000"))
	c.styles.Put(color, style)
	return style
}

// Render returns the canvas as styled terminal text. Runs of cells sharing a background are
// rendered with a single style.
func (c *Canvas) Render() string {
	lines := make([]string, c.height)
	for y := 0; y < c.height; y++ {
		var line strings.Builder
		var run strings.Builder
		runColor := ColorBackground

		for x := 0; x < c.width; x++ {
			target := c.cells[y*c.width+x]
			if x > 0 && target.color != runColor {
				line.WriteString(c.style(runColor).Render(run.String()))
				run.Reset()
			}
			runColor = target.color
			run.WriteRune(target.glyph)
		}

		if run.Len() > 0 {
			line.WriteString(c.style(runColor).Render(run.String()))
		}
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}
