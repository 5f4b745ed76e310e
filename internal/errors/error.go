package errors

import (
	"fmt"
)

// Kind classifies an error. Errors of the same kind match each other with
// errors.Is regardless of their code.
type Kind string

const (
	KindType      Kind = "type"
	KindValue     Kind = "value"
	KindLookup    Kind = "lookup"
	KindRuntime   Kind = "runtime"
	KindAttribute Kind = "attribute"
	KindMode      Kind = "mode"
	KindConfig    Kind = "config"
	KindCLI       Kind = "cli"
)

// Error is a structured error with a code, a kind and an optional hint.
type Error struct {
	// Code is a unique error identifier (e.g., "H001").
	Code string

	// Kind is the error class used for matching.
	Kind Kind

	// Message is a short description of the error, already formatted.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target describes this error. A target with an empty
// Code matches on Kind alone; an empty Kind matches on Code alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Code != "" && t.Code != e.Code {
		return false
	}
	if t.Kind != "" && t.Kind != e.Kind {
		return false
	}
	return t.Code != "" || t.Kind != ""
}

// WithSuggestion adds a fix suggestion to the error.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *Error) WithDetail(d string) *Error {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// New creates an Error from a registered code using the raw message template.
func New(code string) *Error {
	template, ok := registry[code]
	if !ok {
		return &Error{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &Error{
		Code:       code,
		Kind:       template.Kind,
		Message:    template.Message,
		Detail:     template.Detail,
		Suggestion: template.Suggestion,
		DocURL:     template.DocURL,
	}
}

// Errorf creates an Error from a registered code, formatting the template
// message with args.
func Errorf(code string, args ...any) *Error {
	e := New(code)
	if len(args) > 0 {
		e.Message = fmt.Sprintf(e.Message, args...)
	}
	return e
}

// Newf creates a new Error with a formatted message (no code).
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in an Error.
func FromError(err error, code string) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	e := New(code).Wrap(err)
	e.Message = fmt.Sprintf("%s: %v", e.Message, err)
	return e
}
