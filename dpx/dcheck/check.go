// Package dcheck holds the rules applied to each validated DPX header field.
// Checks return an informational message on success and an
// *InvalidFieldError otherwise.
package dcheck

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"

	"dpx-validator/dpx/dheader"
	"github.com/samber/lo"
)

const (
	// FuzzyPadding is the sector size some writers pad DPX files to.
	FuzzyPadding = 8192
	// encryptionKeySentinel also matches keys printed without their
	// leading nibble.
	encryptionKeySentinel = "fffffff"
)

var validVersions = []string{"V1.0", "V2.0"}

// CheckMagicNumber must run before any other field is read: the byte order
// it returns applies to every later field.
func CheckMagicNumber(field []byte) (string, binary.ByteOrder, error) {
	switch string(field) {
	case dheader.MagicNumberBigEndian:
		return "big-endian", binary.BigEndian, nil
	case dheader.MagicNumberLittleEndian:
		return "byte order switched to little-endian", binary.LittleEndian, nil
	}
	return "", nil, invalid(dheader.FieldNameMagicNumber, "invalid magic number: %q", field)
}

func CheckOffsetToImage(field uint32, fileLength int64) (string, error) {
	if int64(field) > fileLength {
		return "", invalid(
			dheader.FieldNameImageOffset,
			"offset to image (%d) is more than file size (%d)",
			field, fileLength,
		)
	}
	return fmt.Sprintf("offset to image (%d) is within file size (%d)", field, fileLength), nil
}

// CheckVersion returns the parsed version as its first value.
func CheckVersion(field []byte) (string, string, error) {
	version := string(field)
	if i := bytes.IndexByte(field, 0); i >= 0 {
		version = string(field[:i])
	}
	if !lo.Contains(validVersions, version) {
		return "", "", invalid(dheader.FieldNameVersion, "invalid header version: %q", version)
	}
	return version, "validated as version " + version, nil
}

func CheckFilesize(field uint32, fileLength int64) (string, error) {
	if int64(field) == fileLength {
		return "file size matches", nil
	}
	if FuzzyFilesize(field, fileLength) {
		return fmt.Sprintf("fuzzy filesize match: header=%d, actual=%d", field, fileLength), nil
	}
	return "", invalid(
		dheader.FieldNameFileSize,
		"file size mismatch: header=%d, actual=%d",
		field, fileLength,
	)
}

// FuzzyFilesize allows a header size smaller than the file by less than
// FuzzyPadding when the file length is a multiple of FuzzyPadding.
func FuzzyFilesize(field uint32, fileLength int64) bool {
	return fileLength > int64(field) &&
		fileLength%FuzzyPadding == 0 &&
		fileLength-int64(field) < FuzzyPadding
}

func CheckUnencrypted(field uint32) (string, error) {
	if !strings.Contains(fmt.Sprintf("%x", field), encryptionKeySentinel) {
		return "", invalid(dheader.FieldNameEncryptionKey, "encryption key not set to NULL/undefined")
	}
	return "encryption key is undefined", nil
}
