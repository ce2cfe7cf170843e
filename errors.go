package tsrr

import "fmt"

// ErrorType classifies input errors raised by the scoring functions.
type ErrorType string

const (
	// ErrorTypeShape indicates mismatched input dimensions or lengths.
	ErrorTypeShape ErrorType = "SHAPE"

	// ErrorTypeValue indicates a similarity value that cannot be ranked.
	ErrorTypeValue ErrorType = "VALUE"

	// ErrorTypeTieGroup indicates an impossible tie-group composition.
	ErrorTypeTieGroup ErrorType = "TIE_GROUP"
)

// InputError is returned for any invalid input; the call computes nothing
// partial once one is raised.
type InputError struct {
	Type    ErrorType
	Message string
}

// Error implements the error interface.
func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Is matches another *InputError by type, so errors.Is(err, ErrShape) works.
func (e *InputError) Is(target error) bool {
	t, ok := target.(*InputError)
	if !ok {
		return false
	}
	return t.Type == e.Type && (t.Message == "" || t.Message == e.Message)
}

// Sentinel values for errors.Is matching.
var (
	ErrShape          = &InputError{Type: ErrorTypeShape}
	ErrValue          = &InputError{Type: ErrorTypeValue}
	ErrTieComposition = &InputError{Type: ErrorTypeTieGroup}
)

func newShapeError(format string, args ...any) *InputError {
	return &InputError{Type: ErrorTypeShape, Message: fmt.Sprintf(format, args...)}
}

func newValueError(format string, args ...any) *InputError {
	return &InputError{Type: ErrorTypeValue, Message: fmt.Sprintf(format, args...)}
}

func newTieGroupError(format string, args ...any) *InputError {
	return &InputError{Type: ErrorTypeTieGroup, Message: fmt.Sprintf(format, args...)}
}
