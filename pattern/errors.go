package pattern

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrMalformedPattern matches every *MalformedError through errors.Is.
	ErrMalformedPattern = errors.New("malformed pattern")
	// ErrPatternOutOfBounds is returned by Apply when the pattern does not fit the grid at the origin.
	ErrPatternOutOfBounds = errors.New("pattern out of bounds")
	// ErrUnknownPattern is returned by Lookup for names missing from the library.
	ErrUnknownPattern = errors.New("unknown pattern")
)

// Reason classifies why an RLE document was rejected.
type Reason int

const (
	ReasonUnexpectedCharacter Reason = iota + 1
	ReasonInvalidCount
	ReasonCountOverflow
	ReasonMissingHeader
	ReasonMalformedHeader
	ReasonMissingTerminator
	ReasonExceedsBounds
)

var reasonNames = map[Reason]string{
	ReasonUnexpectedCharacter: "unexpected character",
	ReasonInvalidCount:        "invalid run count",
	ReasonCountOverflow:       "count overflow",
	ReasonMissingHeader:       "missing header",
	ReasonMalformedHeader:     "malformed header",
	ReasonMissingTerminator:   "missing terminator",
	ReasonExceedsBounds:       "exceeds declared bounds",
}

func (r Reason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return fmt.Sprintf("reason(%d)", int(r))
}

// MalformedError describes where and why parsing stopped. Line and Col are
// 1-based; Col is 0 when the problem concerns the document as a whole.
type MalformedError struct {
	Reason Reason
	Line   int
	Col    int
	Detail string
}

func (e *MalformedError) Error() string {
	switch {
	case e.Line == 0:
		return fmt.Sprintf("malformed pattern: %s: %s", e.Reason, e.Detail)
	case e.Col == 0:
		return fmt.Sprintf("malformed pattern: %s at line %d: %s", e.Reason, e.Line, e.Detail)
	}
	return fmt.Sprintf("malformed pattern: %s at line %d, column %d: %s", e.Reason, e.Line, e.Col, e.Detail)
}

// Is lets errors.Is(err, ErrMalformedPattern) match any MalformedError.
func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformedPattern
}

func malformed(reason Reason, line, col int, format string, args ...any) error {
	return &MalformedError{Reason: reason, Line: line, Col: col, Detail: fmt.Sprintf(format, args...)}
}
