package dheader

import (
	"encoding/binary"
)

// Encode writes header into a zero-filled buffer of the given length.
// Lengths shorter than the fields are allowed; fields that do not fit are
// cut off, which is how truncated files are produced.
func Encode(header Header, order binary.ByteOrder, length int) []byte {
	end := DefaultLayout.MinLength()
	bs := make([]byte, end)

	copy(bs[MagicNumber.Offset:MagicNumber.End()], header.MagicNumber)
	order.PutUint32(bs[ImageOffset.Offset:ImageOffset.End()], header.ImageOffset)
	copy(bs[Version.Offset:Version.End()], header.Version)
	order.PutUint32(bs[FileSize.Offset:FileSize.End()], header.FileSize)
	order.PutUint32(bs[EncryptionKey.Offset:EncryptionKey.End()], header.EncryptionKey)

	if int64(length) <= end {
		return bs[:length]
	}
	return append(bs, make([]byte, int64(length)-end)...)
}

// NewHeader returns a header that passes every check for a file of the
// given length.
func NewHeader(magicNumber string, length int) Header {
	return Header{
		MagicNumber:   []byte(magicNumber),
		ImageOffset:   uint32(DefaultLayout.MinLength()),
		Version:       []byte("V2.0\x00\x00\x00\x00"),
		FileSize:      uint32(length),
		EncryptionKey: EncryptionKeyUndefined,
	}
}
