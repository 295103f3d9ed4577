package lbytes

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

func NewReader(handle io.ReadSeeker) *Reader {
	return &Reader{
		handle: handle,
		order:  binary.BigEndian,
	}
}

func (r *Reader) ByteOrder() binary.ByteOrder {
	return r.order
}

func (r *Reader) SetByteOrder(order binary.ByteOrder) {
	r.order = order
}

// Length seeks to the end of the handle and reports its size.
// The read cursor is left at the end.
func (r *Reader) Length() (int64, error) {
	length, err := r.handle.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, errors.Wrap(err, "Length error seeking to end")
	}
	return length, nil
}

func (r *Reader) ReadBytesAt(offset int64, n int) ([]byte, error) {
	if offset < 0 {
		return nil, errors.Errorf("ReadBytesAt error: negative offset %d", offset)
	}
	if _, err := r.handle.Seek(offset, io.SeekStart); err != nil {
		return nil, errors.Wrapf(err, "ReadBytesAt error seeking to offset %d", offset)
	}
	bs := make([]byte, n)
	if n == 0 {
		return bs, nil
	}
	read, err := io.ReadFull(r.handle, bs)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, errors.Wrapf(
			ErrShortRead,
			"ReadBytesAt error reading %d bytes at offset %d (got %d)",
			n, offset, read,
		)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "ReadBytesAt error reading %d bytes at offset %d", n, offset)
	}
	return bs, nil
}

func (r *Reader) ReadUint32At(offset int64) (uint32, error) {
	bs, err := r.ReadBytesAt(offset, 4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(bs), nil
}
