package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/heapviz/heap"
	"github.com/vkngwrapper/heapviz/interact"
	"github.com/vkngwrapper/heapviz/render"
)

func TestCanvasFillAndLabel(t *testing.T) {
	canvas := render.NewCanvas(8, 2)

	canvas.FillRect(interact.Rect{X: 1, Y: 0, Width: 3, Height: 2}, render.ColorFree)
	canvas.Label(2, 1, "abc")
	canvas.Number(0, 0, 9)

	require.Equal(t, render.ColorFree, canvas.ColorAt(1, 1))
	require.Equal(t, render.ColorFree, canvas.ColorAt(3, 0))
	require.Equal(t, render.ColorBackground, canvas.ColorAt(4, 0))
	require.Equal(t, render.ColorBackground, canvas.ColorAt(20, 20))
	require.Equal(t, "9\n  abc", canvas.Plain())
}

func TestCanvasClipsOutOfBounds(t *testing.T) {
	canvas := render.NewCanvas(4, 1)

	canvas.FillRect(interact.Rect{X: -2, Y: -1, Width: 10, Height: 5}, render.ColorHandle)
	canvas.Label(2, 0, "SBRK")

	require.Equal(t, render.ColorHandle, canvas.ColorAt(0, 0))
	require.Equal(t, render.ColorHandle, canvas.ColorAt(3, 0))
	require.Equal(t, "  SB", canvas.Plain())
}

func TestCanvasResize(t *testing.T) {
	canvas := render.NewCanvas(4, 1)
	canvas.Label(0, 0, "abcd")

	canvas.Resize(6, 2)
	require.Equal(t, 6, canvas.Width())
	require.Equal(t, 2, canvas.Height())
	require.Equal(t, "\n", canvas.Plain())
}

func TestCanvasDrawsController(t *testing.T) {
	h := heap.New(heap.Options{})
	require.NoError(t, h.Grow(100))
	require.NoError(t, h.Allocate(0, 50))

	layout := interact.DefaultLayout(10)
	controller := interact.New(h, layout, nil, interact.Options{})
	controller.Handle(interact.Press(2, 1))

	canvas := render.NewCanvas(30, 12)
	render.Draw(canvas, controller.Frame(), layout)

	require.Equal(t, render.ColorAllocatedSelected, canvas.ColorAt(0, 0))
	require.Equal(t, render.ColorHeadroomSelected, canvas.ColorAt(6, 2))
	require.Equal(t, render.ColorBackground, canvas.ColorAt(9, 0))
	require.Equal(t, render.ColorHandle, canvas.ColorAt(10, 0))
	require.Equal(t, render.ColorButton, canvas.ColorAt(0, 5))

	lines := strings.Split(canvas.Plain(), "\n")
	require.Equal(t, "           SBRK", lines[1])
	require.Equal(t, "    free", lines[5])
	require.Equal(t, "   split", lines[9])
	require.Equal(t, "100  50", lines[11])

	require.Contains(t, canvas.Render(), "SBRK")
}
