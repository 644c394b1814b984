package engine

import (
	"errors"
	"fmt"

	"github.com/colobot/colobot-sub009/internal/data"
)

var (
	ErrUnknownCommand      = errors.New("unknown command")
	ErrDuplicateDefinition = errors.New("duplicate definition")
	ErrResourceOverflow    = errors.New("resource overflow")
	ErrObjectCreation      = errors.New("object creation failed")
	ErrOrderingViolation   = errors.New("ordering violation")
	ErrMissingCollaborator = errors.New("missing collaborator")
)

// UnknownCommandError is a level line whose command has no handler.
type UnknownCommandError struct {
	Command string
	File    string
	Line    int
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q in %s:%d", e.Command, e.File, e.Line)
}

func (e *UnknownCommandError) Is(target error) bool { return target == ErrUnknownCommand }

// DuplicateDefinitionError is a construct that may appear only once.
type DuplicateDefinitionError struct {
	What string
}

func (e *DuplicateDefinitionError) Error() string {
	return fmt.Sprintf("%s defined twice", e.What)
}

func (e *DuplicateDefinitionError) Is(target error) bool { return target == ErrDuplicateDefinition }

// ResourceOverflowError is a fixed-capacity table given too many entries.
type ResourceOverflowError struct {
	Table    string
	Capacity int
	Size     int
}

func (e *ResourceOverflowError) Error() string {
	return fmt.Sprintf("%s holds at most %d entries, got %d", e.Table, e.Capacity, e.Size)
}

func (e *ResourceOverflowError) Is(target error) bool { return target == ErrResourceOverflow }

// ObjectCreationError wraps a refusal of the object manager.
type ObjectCreationError struct {
	Type data.ObjectType
	Err  error
}

func (e *ObjectCreationError) Error() string {
	return fmt.Sprintf("failed to create object %s: %v", e.Type, e.Err)
}

func (e *ObjectCreationError) Unwrap() error { return e.Err }

func (e *ObjectCreationError) Is(target error) bool { return target == ErrObjectCreation }

// OrderingViolationError is a command used before the command enabling it,
// or after a command it must precede.
type OrderingViolationError struct {
	Command  string
	Requires string
	Before   string
}

func (e *OrderingViolationError) Error() string {
	if e.Before != "" {
		return fmt.Sprintf("%s must come before %s", e.Command, e.Before)
	}
	return fmt.Sprintf("%s encountered but %s is not enabled", e.Command, e.Requires)
}

func (e *OrderingViolationError) Is(target error) bool { return target == ErrOrderingViolation }

// LineError attaches the level location to a handler failure.
type LineError struct {
	Command string
	File    string
	Line    int
	Err     error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %s: %v", e.File, e.Line, e.Command, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
