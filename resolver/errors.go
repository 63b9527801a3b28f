package resolver

import (
	"errors"
	"fmt"
)

// Resolution failure kinds. Every error returned by Resolve is an *Error whose Kind is one of these.
var (
	ErrSessionStartup = errors.New("browser session failed to start")
	ErrNavigation     = errors.New("could not load source page")
	ErrExtraction     = errors.New("target frame not found")
)

// Error is a failed resolution of Source.
type Error struct {
	Kind   error
	Source string
	Err    error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %s", e.Kind, e.Source)
	}
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Source, e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func fail(kind error, source string, err error) *Error {
	return &Error{Kind: kind, Source: source, Err: err}
}
