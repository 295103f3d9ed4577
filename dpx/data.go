// Package dpx validates the header of DPX files.
package dpx

import (
	"dpx-validator/dpx/dheader"
	"github.com/pkg/errors"
)

type (
	Kind  string
	Mode  int
	Entry struct {
		Kind    Kind              `json:"kind"`
		Field   dheader.FieldName `json:"field"`
		Message string            `json:"message"`
	}
	Report struct {
		Path        string  `json:"path"`
		Valid       bool    `json:"valid"`
		Entries     []Entry `json:"entries"`
		MagicNumber string  `json:"magic_number,omitempty"`
		ByteOrder   string  `json:"byte_order,omitempty"`
		Version     string  `json:"version,omitempty"`
	}
	Summary struct {
		Info   []string `json:"info"`
		Errors []string `json:"errors"`
	}
)

const (
	KindInfo  = Kind("informational")
	KindError = Kind("invalid_field")
)

const (
	ModeCollectAll Mode = iota
	ModeFailFast
)

const (
	FieldNameTruncation = dheader.FieldName("truncation")
	FieldNameRead       = dheader.FieldName("read")
)

var ErrTruncated = errors.New("Truncated file")

func (m Mode) String() string {
	if m == ModeFailFast {
		return "fail-fast"
	}
	return "collect-all"
}
