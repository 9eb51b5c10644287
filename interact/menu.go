package interact

import "github.com/vkngwrapper/heapviz/heap"

// Action is an operation offered by a block's menu
type Action int

const (
	// ActionToggle frees an allocated block, or begins capturing an allocation size for a free one
	ActionToggle Action = iota
	ActionCoalesceLeft
	ActionCoalesceRight
	ActionSplit
)

var actionMapping = map[Action]string{
	ActionToggle:        "Toggle",
	ActionCoalesceLeft:  "CoalesceLeft",
	ActionCoalesceRight: "CoalesceRight",
	ActionSplit:         "Split",
}

func (a Action) String() string {
	return actionMapping[a]
}

const (
	LabelAllocate      = "allocate"
	LabelFree          = "free"
	LabelCoalesceLeft  = "coalesce-l"
	LabelCoalesceRight = "coalesce-r"
	LabelSplit         = "split"
	LabelSbrk          = "SBRK"

	InputPrompt = "Input number of bytes: "
)

// MenuButton is one clickable entry of a block menu
type MenuButton struct {
	Action Action
	Label  string
	Rect   Rect
}

// MenuButtons returns the buttons offered for the provided block, in hit-test order. Free blocks
// may be allocated, coalesced with either neighbor or split; allocated blocks may only be freed
// or split.
func (l Layout) MenuButtons(block heap.Block) []MenuButton {
	if block.Allocated {
		return []MenuButton{
			{Action: ActionToggle, Label: LabelFree, Rect: l.buttonRect(0, 0)},
			{Action: ActionSplit, Label: LabelSplit, Rect: l.buttonRect(2, 0)},
		}
	}

	return []MenuButton{
		{Action: ActionToggle, Label: LabelAllocate, Rect: l.buttonRect(0, 0)},
		{Action: ActionCoalesceLeft, Label: LabelCoalesceLeft, Rect: l.buttonRect(1, 0)},
		{Action: ActionCoalesceRight, Label: LabelCoalesceRight, Rect: l.buttonRect(1, 1)},
		{Action: ActionSplit, Label: LabelSplit, Rect: l.buttonRect(2, 0)},
	}
}
