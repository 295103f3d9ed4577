// Package dheader describes the DPX header fields that are validated.
package dheader

type (
	FieldName string
	Shape     string
	FieldSpec struct {
		Name   FieldName `json:"name"`
		Offset int64     `json:"offset"`
		Shape  Shape     `json:"shape"`
		Width  int       `json:"width"`
	}
	// Layout is sorted ascending by offset.
	Layout []FieldSpec

	// Header holds the values of the validated fields. It is only used to
	// write headers; validation reads fields one by one.
	Header struct {
		MagicNumber   []byte `json:"magic_number"`
		ImageOffset   uint32 `json:"image_offset"`
		Version       []byte `json:"version"`
		FileSize      uint32 `json:"file_size"`
		EncryptionKey uint32 `json:"encryption_key"`
	}
)

const (
	FieldNameMagicNumber   = FieldName("magic_number")
	FieldNameImageOffset   = FieldName("image_offset")
	FieldNameVersion       = FieldName("version")
	FieldNameFileSize      = FieldName("file_size")
	FieldNameEncryptionKey = FieldName("encryption_key")
)

const (
	ShapeBytes = Shape("bytes")
	ShapeUint  = Shape("uint")
)

const (
	MagicNumberBigEndian    = "SDPX"
	MagicNumberLittleEndian = "XPDS"
	// EncryptionKeyUndefined is the value of an unset encryption key.
	EncryptionKeyUndefined = uint32(0xFFFFFFFF)
)

var (
	MagicNumber   = FieldSpec{Name: FieldNameMagicNumber, Offset: 0, Shape: ShapeBytes, Width: 4}
	ImageOffset   = FieldSpec{Name: FieldNameImageOffset, Offset: 4, Shape: ShapeUint, Width: 4}
	Version       = FieldSpec{Name: FieldNameVersion, Offset: 8, Shape: ShapeBytes, Width: 8}
	FileSize      = FieldSpec{Name: FieldNameFileSize, Offset: 16, Shape: ShapeUint, Width: 4}
	EncryptionKey = FieldSpec{Name: FieldNameEncryptionKey, Offset: 660, Shape: ShapeUint, Width: 4}

	DefaultLayout = Layout{
		MagicNumber,
		ImageOffset,
		Version,
		FileSize,
		EncryptionKey,
	}
)

func (f FieldSpec) End() int64 {
	return f.Offset + int64(f.Width)
}
