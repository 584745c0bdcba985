package jsondoc

import "errors"

// Deserialization error codes (exported consts for type safety by convention).
const (
	CodeEmptyInput      = "empty_input"
	CodeIncompleteInput = "incomplete_input"
	CodeInvalidInput    = "invalid_input"
	CodeNoMemory        = "no_memory"
	CodeTooDeep         = "too_deep"
)

// DeserializationError describes why Deserialize (or DeserializeYAML) could
// not turn an input into a document. Code is one of the constants above;
// Unwrap exposes the decoder error when one exists.
type DeserializationError struct {
	code  string
	cause error
}

func newError(code string, cause error) *DeserializationError {
	return &DeserializationError{code: code, cause: cause}
}

// Code returns the error code, e.g. "invalid_input".
func (e *DeserializationError) Code() string { return e.code }

func (e *DeserializationError) Error() string {
	if e.cause != nil {
		return "jsondoc: " + e.code + ": " + e.cause.Error()
	}
	return "jsondoc: " + e.code
}

func (e *DeserializationError) Unwrap() error { return e.cause }

// AsDeserializationError extracts a *DeserializationError using errors.As
// internally.
func AsDeserializationError(err error) (*DeserializationError, bool) {
	if err == nil {
		return nil, false
	}
	var de *DeserializationError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// Mutation errors returned by Set/Append and friends.
var (
	// ErrUnbound is returned when mutating a zero-valued Variant, Array or
	// Object that is not attached to any document.
	ErrUnbound = errors.New("jsondoc: unbound container")

	// ErrDocumentFull is returned when a mutation would exceed the value
	// budget of a document created with NewDynamic.
	ErrDocumentFull = errors.New("jsondoc: document capacity exhausted")
)
