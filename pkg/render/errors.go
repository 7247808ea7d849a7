package render

import (
	"errors"
	"fmt"
)

var (
	// ErrComposition matches every CompositionError via errors.Is.
	ErrComposition = errors.New("render: invalid composition")
	// ErrRender matches every RenderError via errors.Is.
	ErrRender = errors.New("render: component failed")
	// ErrMissingSlot matches every MissingSlotError via errors.Is.
	ErrMissingSlot = errors.New("render: missing template slot")
)

// CompositionError reports an attachment that would break the tree: a child
// already owned elsewhere, a cycle, or an addition to a frozen container.
// It is raised by Add, never by Render.
type CompositionError struct {
	Reason string
}

func (e *CompositionError) Error() string {
	return "render: invalid composition: " + e.Reason
}

func (e *CompositionError) Is(target error) bool {
	return target == ErrComposition
}

// Compositionf builds a CompositionError with a formatted reason.
func Compositionf(format string, args ...any) error {
	return &CompositionError{Reason: fmt.Sprintf(format, args...)}
}

// RenderError reports a component that could not produce its Result.
// Containers pass it upward untouched.
type RenderError struct {
	Component string
	Err       error
}

func (e *RenderError) Error() string {
	if e.Component == "" {
		return fmt.Sprintf("render: %v", e.Err)
	}
	return fmt.Sprintf("render: %s: %v", e.Component, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

func (e *RenderError) Is(target error) bool {
	return target == ErrRender
}

// Failf builds a RenderError for the named component.
func Failf(component, format string, args ...any) error {
	return &RenderError{Component: component, Err: fmt.Errorf(format, args...)}
}

// MissingSlotError reports a required template slot that was never set.
type MissingSlotError struct {
	Slot string
}

func (e *MissingSlotError) Error() string {
	return fmt.Sprintf("render: template slot %q is not set", e.Slot)
}

func (e *MissingSlotError) Is(target error) bool {
	return target == ErrMissingSlot
}
