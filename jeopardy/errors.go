/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package jeopardy

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is returned by the parser when a directive is absent
// or malformed. Every InvalidQuestionFileError wraps it.
var ErrInvalidFormat = errors.New("invalid format")

// InvalidQuestionFileError reports a question file that cannot be turned
// into a board. Directive names the directive that was missing or bad.
type InvalidQuestionFileError struct {
	Directive string
	Message   string
	Line      int
}

func (e *InvalidQuestionFileError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid question file: line %d: %s", e.Line, e.Message)
	}

	return fmt.Sprintf("invalid question file: %s", e.Message)
}

func (e *InvalidQuestionFileError) Unwrap() error {
	return ErrInvalidFormat
}

func missingDirective(name, purpose string) error {
	return &InvalidQuestionFileError{
		Directive: name,
		Message:   fmt.Sprintf("missing %s, indicating %s", name, purpose),
	}
}
