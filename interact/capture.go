package interact

import "math"

// MaxInput is the largest value numeric capture will accumulate. Digits that would push the
// pending value past it are ignored.
const MaxInput = math.MaxInt32

// CaptureMode names the operation a numeric capture will dispatch once confirmed
type CaptureMode int

const (
	CaptureNone CaptureMode = iota
	CaptureAllocate
	CaptureSplit
)

var captureModeMapping = map[CaptureMode]string{
	CaptureNone:     "None",
	CaptureAllocate: "Allocate",
	CaptureSplit:    "Split",
}

func (m CaptureMode) String() string {
	return captureModeMapping[m]
}

// Capture accumulates a non-negative integer one decimal digit at a time. It moves from idle to
// capturing via Begin, and back to idle via Confirm or Cancel.
type Capture struct {
	mode  CaptureMode
	value int
}

// Begin starts capturing a value for the provided mode, discarding any value in progress
func (c *Capture) Begin(mode CaptureMode) {
	c.mode = mode
	c.value = 0
}

// Active returns true while digits are being accumulated
func (c Capture) Active() bool { return c.mode != CaptureNone }

// Mode returns the operation being captured for, or CaptureNone
func (c Capture) Mode() CaptureMode { return c.mode }

// Value returns the pending value
func (c Capture) Value() int { return c.value }

// Digit appends the provided decimal digit to the pending value. It returns false if capture is
// idle, the digit is not in 0-9, or the result would exceed MaxInput.
func (c *Capture) Digit(digit int) bool {
	if !c.Active() || digit < 0 || digit > 9 {
		return false
	}

	if c.value > (MaxInput-digit)/10 {
		return false
	}

	c.value = c.value*10 + digit
	return true
}

// Backspace discards the last digit of the pending value
func (c *Capture) Backspace() {
	if c.Active() {
		c.value /= 10
	}
}

// Confirm ends capture and returns the mode and value that were pending. An idle Capture
// returns CaptureNone.
func (c *Capture) Confirm() (CaptureMode, int) {
	mode, value := c.mode, c.value
	c.mode = CaptureNone
	c.value = 0
	return mode, value
}

// Cancel ends capture without reporting the pending value
func (c *Capture) Cancel() {
	c.mode = CaptureNone
	c.value = 0
}
