package sequence

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// ParseError reports input that is not a valid integer-list literal. Range
// locates the offending token in the source.
type ParseError struct {
	Range   hcl.Range
	Token   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%s: %s (near %q)", e.Range.String(), e.Message, e.Token)
	}
	return fmt.Sprintf("%s: %s", e.Range.String(), e.Message)
}

// Unwrap returns the underlying conversion error, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Diagnostic converts the error into an hcl.Diagnostic so callers can render
// it with a source snippet.
func (e *ParseError) Diagnostic() *hcl.Diagnostic {
	rng := e.Range
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Invalid codepoint list",
		Detail:   e.Message + ".",
		Subject:  &rng,
	}
}
