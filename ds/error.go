// Package ds holds errors shared across packages.
package ds

import (
	"fmt"
)

type (
	// ErrUnreachableCode marks a branch that a consistent header layout
	// never takes.
	ErrUnreachableCode struct {
		Caller string
		Detail string
	}
)

func (r ErrUnreachableCode) Error() string {
	if r.Detail == "" {
		return fmt.Sprintf("%s: unreachable code", r.Caller)
	}
	return fmt.Sprintf("%s: unreachable code: %s", r.Caller, r.Detail)
}
