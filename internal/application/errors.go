package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNodeNotFound   = errors.New("node not found")
	ErrInvalidTarget  = errors.New("invalid target")
	ErrTransport      = errors.New("transport error")
	ErrDuplicateIndex = errors.New("duplicate index")
	ErrNotFound       = errors.New("not found")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NodeError reports an operation that addressed a missing widget index
type NodeError struct {
	Op    string
	Index int
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("%s: no widget with index %d", e.Op, e.Index)
}

func (e *NodeError) Is(target error) bool {
	return target == ErrNodeNotFound
}

// TargetError reports an add whose target cannot hold children
type TargetError struct {
	Index int
	Type  string
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("cannot add to %s %d: only the document and layouts hold children", e.Type, e.Index)
}

func (e *TargetError) Is(target error) bool {
	return target == ErrInvalidTarget
}

// TransportError wraps a failure to read or parse exchange text
type TransportError struct {
	Source string // clipboard, file path, snapshot name...
	Err    error
}

func (e *TransportError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("cannot import document: %v", e.Err)
	}
	return fmt.Sprintf("cannot import document from %s: %v", e.Source, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// DuplicateIndexError reports an imported document that reuses an index
type DuplicateIndexError struct {
	Index int
}

func (e *DuplicateIndexError) Error() string {
	return fmt.Sprintf("index %d appears more than once", e.Index)
}

func (e *DuplicateIndexError) Is(target error) bool {
	return target == ErrDuplicateIndex
}

// SnapshotError reports a snapshot library lookup that found nothing
type SnapshotError struct {
	Name string
}

func (e *SnapshotError) Error() string {
	return fmt.Sprintf("snapshot not found: %s", e.Name)
}

func (e *SnapshotError) Is(target error) bool {
	return target == ErrNotFound
}
