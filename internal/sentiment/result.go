package sentiment

import (
	"strconv"
	"strings"
)

// Result is one classification of a single text. It is a plain value: callers
// receive their own copy and nothing retains it after the call returns.
type Result struct {
	Polarity     Polarity     `json:"polarity" yaml:"polarity"`
	Emotion      Emotion      `json:"emotion" yaml:"emotion"`
	Subjectivity Subjectivity `json:"subjectivity" yaml:"subjectivity"`
	Rationale    string       `json:"rationale" yaml:"rationale"`
}

// FieldError describes one violated constraint on a Result field.
type FieldError struct {
	Field  string
	Reason string
}

func (f FieldError) String() string {
	return f.Field + ": " + f.Reason
}

// ValidationError lists every field that failed validation, in field order.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "result invalid"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return "result invalid: " + strings.Join(parts, "; ")
}

// Has reports whether field is among the failures.
func (e *ValidationError) Has(field string) bool {
	if e == nil {
		return false
	}
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Validate checks that every enumerated field is in its closed set and that the
// rationale is non-empty after trimming. It returns *ValidationError or nil.
func (r Result) Validate() error {
	var fields []FieldError
	if r.Polarity == "" {
		fields = append(fields, FieldError{Field: "polarity", Reason: "missing"})
	} else if !r.Polarity.Valid() {
		fields = append(fields, FieldError{Field: "polarity", Reason: invalidReason(string(r.Polarity), polarities)})
	}
	if r.Emotion == "" {
		fields = append(fields, FieldError{Field: "emotion", Reason: "missing"})
	} else if !r.Emotion.Valid() {
		fields = append(fields, FieldError{Field: "emotion", Reason: invalidReason(string(r.Emotion), emotions)})
	}
	if r.Subjectivity == "" {
		fields = append(fields, FieldError{Field: "subjectivity", Reason: "missing"})
	} else if !r.Subjectivity.Valid() {
		fields = append(fields, FieldError{Field: "subjectivity", Reason: invalidReason(string(r.Subjectivity), subjectivities)})
	}
	if strings.TrimSpace(r.Rationale) == "" {
		fields = append(fields, FieldError{Field: "rationale", Reason: "missing"})
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func invalidReason[T ~string](value string, allowed []T) string {
	return "unknown value " + strconv.Quote(value) + " (allowed: " + joinValues(allowed) + ")"
}
