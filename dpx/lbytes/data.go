package lbytes

import (
	"encoding/binary"
	"io"
)

type (
	// Reader reads fixed-width fields at absolute offsets. The byte order
	// belongs to whoever owns the Reader; Reader itself never changes it.
	Reader struct {
		handle io.ReadSeeker
		order  binary.ByteOrder
	}
)
