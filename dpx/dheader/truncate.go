package dheader

import (
	"github.com/samber/lo"
)

// Last returns the field that ends furthest into the file.
func (l Layout) Last() FieldSpec {
	return lo.Reduce(
		l,
		func(last FieldSpec, spec FieldSpec, _ int) FieldSpec {
			if spec.End() > last.End() {
				return spec
			}
			return last
		},
		FieldSpec{},
	)
}

// MinLength is the shortest file that holds every field of the layout.
func (l Layout) MinLength() int64 {
	return l.Last().End()
}

// Truncated reports whether a file of the given length is too short to hold
// last. Empty files are always truncated.
func Truncated(length int64, last FieldSpec) bool {
	return length < last.End()
}
