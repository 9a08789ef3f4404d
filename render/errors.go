// File: errors.go
// Role: the renderer's two recoverable error kinds.
// Policy: sentinel-wrapping — base sentinels for errors.Is, formatted
// context via %w.
package render

import (
	"errors"
	"fmt"
)

// ErrSelfLoop is the sentinel wrapped by every self-loop rejection.
// A node listing itself as a direct successor is not supported; Render
// rejects it before any output is written.
var ErrSelfLoop = errors.New("render: self loop")

// ErrLabelTooWide is the sentinel wrapped when a printed label exceeds
// MaxColWidth. Render emits this on the first offender in order.
var ErrLabelTooWide = errors.New("render: label exceeds max column width")

// selfLoopError reports that label is its own direct successor.
func selfLoopError(label string) error {
	return fmt.Errorf("render: self loop on %q: %w", label, ErrSelfLoop)
}

// labelTooWideError reports that label's printed form exceeds MaxColWidth.
func labelTooWideError(label string, width int) error {
	return fmt.Errorf("render: label %q has width %d > max %d: %w", label, width, MaxColWidth, ErrLabelTooWide)
}
