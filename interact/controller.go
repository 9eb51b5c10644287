package interact

import (
	"io"

	"github.com/vkngwrapper/heapviz/heap"
	"golang.org/x/exp/slog"
)

// Model is the heap the controller drives. The controller reads block state through it and only
// ever mutates the heap through its operations.
type Model interface {
	EndOfHeap() int
	Len() int
	Block(index int) (heap.Block, bool)
	Blocks() []heap.Block

	Grow(newBreak int) error
	Allocate(index int, requestedBytes int) error
	Free(index int) error
	Split(index int, newRightSize int) error
	Coalesce(leftIndex, rightIndex int) error
}

var _ Model = &heap.Heap{}

// Options configures a new Controller
type Options struct {
	// MinGrowth is the number of bytes a growth drag must exceed before it is committed
	MinGrowth int
	// MaxBreak is the highest break a growth drag may reach. Zero means unlimited.
	MaxBreak int
	// Logger receives debug output. A nil Logger discards it.
	Logger *slog.Logger
}

const noSelection = -1

// Controller translates input events into heap operations and owns the transient interface
// state that is not part of the heap: the growth drag, the selected block and numeric capture.
//
// Controller is not safe for concurrent use; events must be handled in arrival order from
// a single goroutine.
type Controller struct {
	logger   *slog.Logger
	model    Model
	layout   Layout
	notifier Notifier

	minGrowth int
	maxBreak  int

	dragging       bool
	dragStartX     int
	dragStartBreak int
	pendingBreak   int

	selected int
	capture  Capture
}

// New creates a Controller for the provided model. Rejected operations are reported to notifier.
func New(model Model, layout Layout, notifier Notifier, options Options) *Controller {
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Controller{
		logger:   logger,
		model:    model,
		layout:   layout,
		notifier: notifier,

		minGrowth: options.MinGrowth,
		maxBreak:  options.MaxBreak,

		selected: noSelection,
	}
}

// Selected returns the index of the block whose menu is open. The boolean is false if no menu is open.
func (c *Controller) Selected() (int, bool) {
	return c.selected, c.selected != noSelection
}

// Dragging returns true while the growth handle is held
func (c *Controller) Dragging() bool { return c.dragging }

// PendingBreak returns the break the growth handle currently points at. Outside of a drag this
// is the end of the heap.
func (c *Controller) PendingBreak() int {
	if c.dragging {
		return c.pendingBreak
	}
	return c.model.EndOfHeap()
}

// Capture returns the state of numeric input capture
func (c *Controller) Capture() Capture { return c.capture }

// Handle processes a single input event
func (c *Controller) Handle(event Event) {
	switch event.Kind {
	case PointerDown:
		c.pointerDown(event)
	case PointerMove:
		c.pointerMove(event)
	case PointerUp:
		c.pointerUp(event)
	case Digit:
		c.capture.Digit(event.Digit)
	case Backspace:
		c.capture.Backspace()
	case Confirm:
		c.confirm()
	case Cancel:
		if c.capture.Active() {
			c.capture.Cancel()
		} else {
			c.selected = noSelection
		}
	}
}

func (c *Controller) pointerDown(event Event) {
	if event.Button != ButtonLeft || c.capture.Active() || c.dragging {
		return
	}

	blocks := c.model.Blocks()
	end := c.model.EndOfHeap()
	placement := c.layout.Place(blocks, end, end)

	// Controls drawn over blocks intercept the press first
	if placement.Handle.Contains(event.X, event.Y) {
		c.logger.Debug("Controller::BeginDrag", slog.Int("EndOfHeap", end))
		c.dragging = true
		c.dragStartX = event.X
		c.dragStartBreak = end
		c.pendingBreak = end
		return
	}

	if block, ok := c.selectedBlock(); ok {
		for _, button := range c.layout.MenuButtons(block) {
			if button.Rect.Contains(event.X, event.Y) {
				c.dispatchAction(button.Action, block)
				return
			}
		}
	}

	for i, rect := range placement.Blocks {
		if rect.Contains(event.X, event.Y) {
			if i == c.selected {
				c.selected = noSelection
			} else {
				c.selected = i
			}
			return
		}
	}

	c.selected = noSelection
}

func (c *Controller) pointerMove(event Event) {
	if !c.dragging {
		return
	}

	pending := c.dragStartBreak + c.layout.DeltaBytes(event.X-c.dragStartX)
	if c.maxBreak > 0 && pending > c.maxBreak {
		pending = c.maxBreak
	}
	if end := c.model.EndOfHeap(); pending < end {
		pending = end
	}
	c.pendingBreak = pending
}

func (c *Controller) pointerUp(event Event) {
	if !c.dragging || event.Button != ButtonLeft {
		return
	}
	c.dragging = false

	end := c.model.EndOfHeap()
	if c.pendingBreak > end+c.minGrowth {
		c.report(c.model.Grow(c.pendingBreak))
	} else {
		c.logger.Debug("Controller::DiscardDrag", slog.Int("EndOfHeap", end), slog.Int("PendingBreak", c.pendingBreak))
	}

	c.revalidate()
}

func (c *Controller) dispatchAction(action Action, block heap.Block) {
	index := c.selected
	c.logger.Debug("Controller::Dispatch", slog.String("Action", action.String()), slog.Int("Index", index))

	switch action {
	case ActionToggle:
		if block.Allocated {
			c.report(c.model.Free(index))
		} else {
			c.capture.Begin(CaptureAllocate)
		}
	case ActionCoalesceLeft:
		if c.report(c.model.Coalesce(index-1, index)) {
			c.selected = noSelection
		}
	case ActionCoalesceRight:
		if c.report(c.model.Coalesce(index, index+1)) {
			c.selected = noSelection
		}
	case ActionSplit:
		c.capture.Begin(CaptureSplit)
	}

	c.revalidate()
}

func (c *Controller) confirm() {
	if !c.capture.Active() {
		return
	}

	mode, value := c.capture.Confirm()
	c.logger.Debug("Controller::Confirm", slog.String("Mode", mode.String()), slog.Int("Value", value), slog.Int("Index", c.selected))

	switch mode {
	case CaptureAllocate:
		c.report(c.model.Allocate(c.selected, value))
	case CaptureSplit:
		c.report(c.model.Split(c.selected, value))
	}

	c.revalidate()
}

// report notifies the user of a rejected operation and returns true if err is nil
func (c *Controller) report(err error) bool {
	if err == nil {
		return true
	}

	c.logger.Debug("Controller::Rejected", slog.String("Error", err.Error()))
	if c.notifier != nil {
		c.notifier.Notify(Message(err))
	}
	return false
}

// revalidate clears the selection if structural changes moved it past the end of the block sequence
func (c *Controller) revalidate() {
	if c.selected >= c.model.Len() {
		c.selected = noSelection
	}
}

func (c *Controller) selectedBlock() (heap.Block, bool) {
	if c.selected == noSelection {
		return heap.Block{}, false
	}
	return c.model.Block(c.selected)
}
