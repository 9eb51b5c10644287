package main

import (
	"bufio"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/heapviz/render"
)

// writeExports writes the JSON layout dump and the SVG snapshot of the model's heap to the
// provided paths. Empty paths are skipped.
func writeExports(m Model, dumpPath, svgPath string) error {
	if dumpPath != "" {
		data, err := m.heap.DetailedMap()
		if err != nil {
			return errors.Wrap(err, "could not build heap layout")
		}

		if err := os.WriteFile(dumpPath, data, 0644); err != nil {
			return errors.Wrapf(err, "could not write heap layout to %s", dumpPath)
		}
	}

	if svgPath != "" {
		if err := writeSVG(m, svgPath); err != nil {
			return errors.Wrapf(err, "could not write heap snapshot to %s", svgPath)
		}
	}

	return nil
}

func writeSVG(m Model, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	render.WriteSVG(w, m.controller.Frame(), m.layout, m.canvas.Width(), m.canvas.Height())
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}
