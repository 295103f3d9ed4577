package dheader

import (
	"bytes"
	"encoding/binary"
	"testing"

	"dpx-validator/dpx/lbytes"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout_SortedByOffset(t *testing.T) {
	offsets := lo.Map(
		DefaultLayout,
		func(spec FieldSpec, _ int) int64 {
			return spec.Offset
		},
	)
	assert.Equal(t, []int64{0, 4, 8, 16, 660}, offsets)
	assert.Equal(t, EncryptionKey, DefaultLayout.Last())
	assert.Equal(t, int64(664), DefaultLayout.MinLength())
}

func TestTruncated(t *testing.T) {
	tests := map[int64]bool{
		0:     true,
		1:     true,
		663:   true,
		664:   false,
		665:   false,
		16384: false,
	}
	for length, expected := range tests {
		assert.Equalf(t, expected, Truncated(length, DefaultLayout.Last()), "length %d", length)
	}
}

func TestReadField(t *testing.T) {
	for _, order := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian} {
		header := NewHeader(MagicNumberBigEndian, 2048)
		header.ImageOffset = 1000
		bs := Encode(header, order, 2048)
		require.Len(t, bs, 2048)

		reader := lbytes.NewReader(bytes.NewReader(bs))
		reader.SetByteOrder(order)

		magicNumber, err := ReadBytes(reader, MagicNumber)
		require.NoError(t, err)
		assert.Equal(t, []byte("SDPX"), magicNumber)

		imageOffset, err := ReadUint32(reader, ImageOffset)
		require.NoError(t, err)
		assert.Equal(t, uint32(1000), imageOffset)

		version, err := ReadBytes(reader, Version)
		require.NoError(t, err)
		assert.Equal(t, []byte("V2.0\x00\x00\x00\x00"), version)

		fileSize, err := ReadUint32(reader, FileSize)
		require.NoError(t, err)
		assert.Equal(t, uint32(2048), fileSize)

		encryptionKey, err := ReadUint32(reader, EncryptionKey)
		require.NoError(t, err)
		assert.Equal(t, EncryptionKeyUndefined, encryptionKey)
	}
}

func TestReadField_Errors(t *testing.T) {
	reader := lbytes.NewReader(bytes.NewReader(make([]byte, 20)))

	_, err := ReadUint32(reader, EncryptionKey)
	assert.ErrorIs(t, err, lbytes.ErrShortRead)

	_, err = ReadField(reader, FieldSpec{Name: "odd", Offset: 0, Shape: ShapeUint, Width: 3})
	assert.Error(t, err)

	_, err = ReadBytes(reader, FileSize)
	assert.Error(t, err)
}

func TestEncode_Truncates(t *testing.T) {
	bs := Encode(NewHeader(MagicNumberBigEndian, 10), binary.BigEndian, 10)
	assert.Equal(t, []byte("SDPX"), bs[:4])
	assert.Len(t, bs, 10)
}
