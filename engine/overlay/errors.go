package overlay

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyAttached: the child already has a parent.
	ErrAlreadyAttached = errors.New("window already attached")
	// ErrNameCollision: the parent already has a child with the same name.
	ErrNameCollision = errors.New("sibling with the same name exists")
	// ErrCycle: the parent lies inside the child's subtree.
	ErrCycle = errors.New("parent is a descendant of the child")
	// ErrNotChild: the window is not attached to the given parent.
	ErrNotChild = errors.New("window is not a child of the parent")

	ErrInvalidWindow = errors.New("invalid window handle")
	ErrForeignWindow = errors.New("window belongs to another overlay")
	ErrStaleWindow   = errors.New("window has been released")
	ErrInvalidName   = errors.New("invalid window name")
	ErrRootWindow    = errors.New("operation not allowed on the root window")
	ErrStillAttached = errors.New("window is still attached")
)

// AttachError reports a rejected Attach. Kind is one of ErrAlreadyAttached,
// ErrNameCollision or ErrCycle; Other is the path of the existing parent,
// the colliding sibling, or the parent, respectively.
type AttachError struct {
	Kind   error
	Child  string
	Parent string
	Other  string
}

func (e *AttachError) Error() string {
	prefix := fmt.Sprintf("overlay: cannot attach window %q to %q", displayPath(e.Child), displayPath(e.Parent))
	switch e.Kind {
	case ErrAlreadyAttached:
		return fmt.Sprintf("%s: already attached to %q", prefix, displayPath(e.Other))
	case ErrNameCollision:
		return fmt.Sprintf("%s: %q already exists", prefix, displayPath(e.Other))
	case ErrCycle:
		return fmt.Sprintf("%s: %q is inside the subtree of %q", prefix, displayPath(e.Other), displayPath(e.Child))
	}
	return fmt.Sprintf("%s: %v", prefix, e.Kind)
}

func (e *AttachError) Unwrap() error { return e.Kind }

// DetachError reports a Detach from a window that is not the child's parent.
// Actual is the path of the child's real parent, empty when it has none.
type DetachError struct {
	Child  string
	Parent string
	Actual string
}

func (e *DetachError) Error() string {
	if e.Actual == "" {
		return fmt.Sprintf("overlay: cannot detach window %q from %q: it has no parent",
			displayPath(e.Child), displayPath(e.Parent))
	}
	return fmt.Sprintf("overlay: cannot detach window %q from %q: its parent is %q",
		displayPath(e.Child), displayPath(e.Parent), displayPath(e.Actual))
}

func (e *DetachError) Unwrap() error { return ErrNotChild }

type nameError struct{ name string }

func (e *nameError) Error() string {
	return fmt.Sprintf("overlay: window name %q contains %q", e.name, Separator)
}

func (e *nameError) Unwrap() error { return ErrInvalidName }

func displayPath(p string) string {
	if p == "" {
		return "<root>"
	}
	return p
}
