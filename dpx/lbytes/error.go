package lbytes

import (
	"github.com/pkg/errors"
)

// ErrShortRead is returned when fewer bytes than requested are left at an offset.
var ErrShortRead = errors.New("short read")
