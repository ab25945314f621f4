package objfile

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrSourceUnreadable marks failures to open or read the input source.
// Match with errors.Is.
var ErrSourceUnreadable = errors.New("source unreadable")

// MalformedNumberError is returned when a coordinate or index field is
// present but does not parse as a number. The whole parse is aborted,
// nothing of the partial result is returned.
type MalformedNumberError struct {
	Line  int
	Field string
	Err   error
}

func (e *MalformedNumberError) Error() string {
	return fmt.Sprintf("malformed number %q on line %d: %v", e.Field, e.Line, e.Err)
}

func (e *MalformedNumberError) Unwrap() error { return e.Err }

// IndexOutOfRangeError is returned when a face references a vertex
// position outside [0, vertex count). Rejected at parse time so that
// a returned Mesh always satisfies its index invariant.
type IndexOutOfRangeError struct {
	Line        int
	Index       int
	VertexCount int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("face index %d on line %d out of range (mesh has %d vertices)",
		e.Index+1, e.Line, e.VertexCount)
}
