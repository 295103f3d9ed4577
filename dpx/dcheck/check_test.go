package dcheck

import (
	"encoding/binary"
	"testing"

	"dpx-validator/dpx/dheader"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireInvalidField(t *testing.T, err error, field dheader.FieldName) {
	t.Helper()
	var invalidField *InvalidFieldError
	require.True(t, errors.As(err, &invalidField), "expected *InvalidFieldError, got %v", err)
	assert.Equal(t, field, invalidField.Field)
}

func TestCheckMagicNumber(t *testing.T) {
	info, order, err := CheckMagicNumber([]byte("SDPX"))
	require.NoError(t, err)
	assert.Equal(t, "big-endian", info)
	assert.Equal(t, binary.BigEndian, order)

	info, order, err = CheckMagicNumber([]byte("XPDS"))
	require.NoError(t, err)
	assert.Equal(t, "byte order switched to little-endian", info)
	assert.Equal(t, binary.LittleEndian, order)

	for _, field := range [][]byte{[]byte("XXXX"), []byte("sdpx"), {0, 0, 0, 0}} {
		_, order, err = CheckMagicNumber(field)
		requireInvalidField(t, err, dheader.FieldNameMagicNumber)
		assert.Contains(t, err.Error(), "invalid magic number")
		assert.Nil(t, order)
	}
}

func TestCheckOffsetToImage(t *testing.T) {
	_, err := CheckOffsetToImage(2048, 2048)
	assert.NoError(t, err)

	_, err = CheckOffsetToImage(0, 0)
	assert.NoError(t, err)

	_, err = CheckOffsetToImage(50000, 2048)
	requireInvalidField(t, err, dheader.FieldNameImageOffset)
}

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		data    string
		valid   bool
		version string
	}{
		{"V2.0\x00  y", true, "V2.0"},
		{"V2.0\x00\x00\x00\x00", true, "V2.0"},
		{"V1.0\x00  y", true, "V1.0"},
		{"V1.0\x00\x00\x00\x00", true, "V1.0"},
		{"V2.0  - ", false, ""},
		{"V1.0  =\x00", false, ""},
		{"V3.0\x00 - ", false, ""},
		{"\x00\x00\x00\x00\x00\x00\x00\x00", false, ""},
	}
	for _, test := range tests {
		version, info, err := CheckVersion([]byte(test.data))
		if test.valid {
			require.NoErrorf(t, err, "%q", test.data)
			assert.Equal(t, test.version, version)
			assert.Equal(t, "validated as version "+test.version, info)
		} else {
			requireInvalidField(t, err, dheader.FieldNameVersion)
			assert.Contains(t, err.Error(), "invalid header version")
		}
	}
}

func TestCheckFilesize(t *testing.T) {
	info, err := CheckFilesize(2048, 2048)
	require.NoError(t, err)
	assert.Equal(t, "file size matches", info)

	info, err = CheckFilesize(16383, 16384)
	require.NoError(t, err)
	assert.Equal(t, "fuzzy filesize match: header=16383, actual=16384", info)

	info, err = CheckFilesize(1000, 8192)
	require.NoError(t, err)
	assert.Contains(t, info, "fuzzy")

	_, err = CheckFilesize(15999, 16000)
	requireInvalidField(t, err, dheader.FieldNameFileSize)
	assert.Equal(t, "file size mismatch: header=15999, actual=16000", err.Error())

	_, err = CheckFilesize(6000000, 16384)
	requireInvalidField(t, err, dheader.FieldNameFileSize)
}

func TestFuzzyFilesize(t *testing.T) {
	assert.True(t, FuzzyFilesize(16383, 16384))
	assert.True(t, FuzzyFilesize(8193, 16384))
	assert.False(t, FuzzyFilesize(8192, 16384))
	assert.False(t, FuzzyFilesize(16384, 16384))
	assert.False(t, FuzzyFilesize(20000, 16384))
	assert.False(t, FuzzyFilesize(15999, 16000))
}

func TestCheckUnencrypted(t *testing.T) {
	_, err := CheckUnencrypted(0xFFFFFFFF)
	assert.NoError(t, err)

	_, err = CheckUnencrypted(0x0FFFFFFF)
	assert.NoError(t, err)

	_, err = CheckUnencrypted(0x00000001)
	requireInvalidField(t, err, dheader.FieldNameEncryptionKey)
	assert.Equal(t, "encryption key not set to NULL/undefined", err.Error())

	_, err = CheckUnencrypted(0)
	assert.Error(t, err)
}
