package fars

import "fmt"

// FileNotFoundError reports a source file absent from the filesystem.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file '%s' does not exist", e.Path)
}

// TypeMismatchError reports a year or state label that is not
// integer-coercible.
type TypeMismatchError struct {
	Field string // "year" or "state"
	Value string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s %q is not an integer", e.Field, e.Value)
}

// InvalidStateError reports a state code absent from a year's STATE column.
type InvalidStateError struct {
	State int
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid STATE number: %d", e.State)
}
