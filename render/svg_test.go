package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/heapviz/heap"
	"github.com/vkngwrapper/heapviz/interact"
	"github.com/vkngwrapper/heapviz/render"
)

func TestWriteSVG(t *testing.T) {
	h := heap.New(heap.Options{})
	require.NoError(t, h.Grow(100))
	require.NoError(t, h.Split(0, 40))

	layout := interact.DefaultLayout(10)
	controller := interact.New(h, layout, nil, interact.Options{})

	var out bytes.Buffer
	render.WriteSVG(&out, controller.Frame(), layout, 20, 12)

	doc := out.String()
	require.Contains(t, doc, "<svg")
	require.Contains(t, doc, "</svg>")
	require.Contains(t, doc, "Heap layout")
	require.Contains(t, doc, "SBRK")
	// handle and both blocks
	require.Contains(t, doc, `x="0" y="0" width="50" height="60" style="fill:#0000FF"`)
	require.Contains(t, doc, `x="60" y="0" width="30" height="60" style="fill:#0000FF"`)
	require.Contains(t, doc, `x="100" y="0" width="60" height="60" style="fill:#00FFFF"`)
}
