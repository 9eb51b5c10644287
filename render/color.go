package render

// Color names the role of a filled region. Renderers map roles to concrete colors.
type Color int

const (
	ColorBackground Color = iota
	ColorFree
	ColorFreeSelected
	ColorAllocated
	ColorAllocatedSelected
	ColorHeadroom
	ColorHeadroomSelected
	ColorHandle
	ColorGrowth
	ColorButton
)

var colorMapping = map[Color]string{
	ColorBackground:        "Background",
	ColorFree:              "Free",
	ColorFreeSelected:      "FreeSelected",
	ColorAllocated:         "Allocated",
	ColorAllocatedSelected: "AllocatedSelected",
	ColorHeadroom:          "Headroom",
	ColorHeadroomSelected:  "HeadroomSelected",
	ColorHandle:            "Handle",
	ColorGrowth:            "Growth",
	ColorButton:            "Button",
}

func (c Color) String() string {
	return colorMapping[c]
}

// Palette maps every Color to a hex RGB value. Free blocks are blue, the bytes an occupant asked
// for are red and the headroom of an allocated block is a lighter red. Selected blocks lean
// toward purple.
var Palette = map[Color]string{
	ColorBackground:        "#FFFFFF",
	ColorFree:              "#0000FF",
	ColorFreeSelected:      "#8000FF",
	ColorAllocated:         "#FF0000",
	ColorAllocatedSelected: "#FF0080",
	ColorHeadroom:          "#FF9999",
	ColorHeadroomSelected:  "#FF99CC",
	ColorHandle:            "#00FFFF",
	ColorGrowth:            "#B3FFFF",
	ColorButton:            "#00FFFF",
}

func blockColors(allocated, selected bool) (used Color, headroom Color) {
	switch {
	case allocated && selected:
		return ColorAllocatedSelected, ColorHeadroomSelected
	case allocated:
		return ColorAllocated, ColorHeadroom
	case selected:
		return ColorFreeSelected, ColorFreeSelected
	default:
		return ColorFree, ColorFree
	}
}
