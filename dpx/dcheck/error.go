package dcheck

import (
	"fmt"

	"dpx-validator/dpx/dheader"
)

type (
	// InvalidFieldError reports a header field whose value breaks its rule.
	InvalidFieldError struct {
		Field  dheader.FieldName
		Reason string
	}
)

func (r *InvalidFieldError) Error() string {
	return r.Reason
}

func invalid(field dheader.FieldName, format string, args ...any) *InvalidFieldError {
	return &InvalidFieldError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	}
}
