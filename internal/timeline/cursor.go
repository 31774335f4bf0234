package timeline

import (
	"github.com/bietkhonhungvandi212/pagesim/internal/replacement"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// Cursor navigates the steps of a Result. It reads the Result and never modifies it,
// so any number of cursors can share one Result.
type Cursor struct {
	result *replacement.Result
	idx    int
}

func NewCursor(result *replacement.Result) (*Cursor, error) {
	if result == nil || len(result.Steps) == 0 {
		return nil, util.NewValidationError(util.ErrTypeInvalidInput, "result", "")
	}
	return &Cursor{result: result}, nil
}

func (c *Cursor) Current() replacement.Step {
	return c.result.Steps[c.idx]
}

func (c *Cursor) Index() int {
	return c.idx
}

func (c *Cursor) Len() int {
	return len(c.result.Steps)
}

func (c *Cursor) AtEnd() bool {
	return c.idx == len(c.result.Steps)-1
}

// StepForward advances one step and reports whether it moved.
func (c *Cursor) StepForward() bool {
	if c.AtEnd() {
		return false
	}
	c.idx++
	return true
}

// StepBackward moves back one step and reports whether it moved.
func (c *Cursor) StepBackward() bool {
	if c.idx == 0 {
		return false
	}
	c.idx--
	return true
}

func (c *Cursor) JumpToEnd() {
	c.idx = len(c.result.Steps) - 1
}

func (c *Cursor) JumpToStart() {
	c.idx = 0
}

// Reset returns the cursor to the first step.
func (c *Cursor) Reset() {
	c.JumpToStart()
}

// Seek moves to step i. Out of range indices leave the cursor where it is.
func (c *Cursor) Seek(i int) bool {
	if i < 0 || i >= len(c.result.Steps) {
		return false
	}
	c.idx = i
	return true
}

// FaultsSoFar counts faults up to and including the current step.
func (c *Cursor) FaultsSoFar() int {
	n := 0
	for _, s := range c.result.Steps[:c.idx+1] {
		if s.Fault {
			n++
		}
	}
	return n
}
