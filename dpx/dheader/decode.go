package dheader

import (
	"fmt"

	"dpx-validator/ds"
	"dpx-validator/dpx/lbytes"
	"github.com/pkg/errors"
)

// ReadField decodes spec with the reader's current byte order. Byte-shaped
// fields come back as []byte, integer fields as uint32.
func ReadField(reader *lbytes.Reader, spec FieldSpec) (any, error) {
	switch {
	case spec.Shape == ShapeBytes:
		bs, err := reader.ReadBytesAt(spec.Offset, spec.Width)
		if err != nil {
			return nil, errors.Wrapf(err, `ReadField error reading key "%v"`, spec.Name)
		}
		return bs, nil
	case spec.Shape == ShapeUint && spec.Width == 4:
		value, err := reader.ReadUint32At(spec.Offset)
		if err != nil {
			return nil, errors.Wrapf(err, `ReadField error reading key "%v"`, spec.Name)
		}
		return value, nil
	}

	return nil, ds.ErrUnreachableCode{
		Caller: "dheader.ReadField",
		Detail: fmt.Sprintf("shape %q with width %d", spec.Shape, spec.Width),
	}
}

func ReadBytes(reader *lbytes.Reader, spec FieldSpec) ([]byte, error) {
	value, err := ReadField(reader, spec)
	if err != nil {
		return nil, err
	}
	bs, ok := value.([]byte)
	if !ok {
		return nil, errors.Errorf(`ReadBytes error: key "%v" is not a byte field`, spec.Name)
	}
	return bs, nil
}

func ReadUint32(reader *lbytes.Reader, spec FieldSpec) (uint32, error) {
	value, err := ReadField(reader, spec)
	if err != nil {
		return 0, err
	}
	n, ok := value.(uint32)
	if !ok {
		return 0, errors.Errorf(`ReadUint32 error: key "%v" is not an integer field`, spec.Name)
	}
	return n, nil
}
