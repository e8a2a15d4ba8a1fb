package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfiguration = errors.New("configuration error")
	ErrRemote        = errors.New("remote service error")
	ErrInvalidJSON   = errors.New("invalid JSON response")
	ErrValidation    = errors.New("schema validation error")
	ErrInvalidInput  = errors.New("invalid input")
)

// Wrap builds an error message that includes component context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrRemote
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Mark tags message with marker without prefixing the marker text. Use it for
// user-facing messages that must be printed verbatim.
func Mark(marker error, message string) error {
	return &markedError{marker: marker, message: strings.TrimSpace(message)}
}

type markedError struct {
	marker  error
	message string
}

func (e *markedError) Error() string {
	if e.message == "" && e.marker != nil {
		return e.marker.Error()
	}
	return e.message
}

func (e *markedError) Unwrap() error { return e.marker }

// Kind maps an error onto the short label used for the error_kind log field.
// ErrInvalidJSON is checked before ErrRemote since decode failures carry both.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConfiguration):
		return "configuration"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrInvalidJSON):
		return "invalid_json"
	case errors.Is(err, ErrRemote):
		return "remote"
	case errors.Is(err, ErrValidation):
		return "validation"
	default:
		return "unknown"
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
