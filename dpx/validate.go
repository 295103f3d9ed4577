package dpx

import (
	"io"
	"os"

	"dpx-validator/dpx/dheader"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	lop "github.com/samber/lo/parallel"
)

// Validate checks the header of the file behind handle. path is only used
// to label the report.
func Validate(handle io.ReadSeeker, path string, mode Mode) Report {
	run := newRun(handle, path)

	length, err := run.reader.Length()
	if err != nil {
		run.addError(FieldNameRead, "field read error: "+err.Error())
		return run.report
	}
	run.length = length

	if dheader.Truncated(run.length, dheader.DefaultLayout.Last()) {
		run.addError(FieldNameTruncation, ErrTruncated.Error())
		return run.report
	}

	run.execute(Steps, mode)
	return run.report
}

// ValidateFile opens path and validates it. The error is only set when the
// file could not be opened.
func ValidateFile(path string, mode Mode) (Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return Report{}, errors.Wrapf(err, "ValidateFile error opening %q", path)
	}
	defer file.Close()

	return Validate(file, path, mode), nil
}

// ValidateFiles validates every path on its own goroutine. Reports keep the
// order of paths. Files that cannot be opened give an invalid report.
func ValidateFiles(paths []string, mode Mode) []Report {
	return lop.Map(
		paths,
		func(path string, _ int) Report {
			report, err := ValidateFile(path, mode)
			if err != nil {
				return Report{
					Path:  path,
					Valid: false,
					Entries: []Entry{
						{Kind: KindError, Field: FieldNameRead, Message: err.Error()},
					},
				}
			}
			return report
		},
	)
}

func FileIsValid(path string) (bool, error) {
	report, err := ValidateFile(path, ModeFailFast)
	if err != nil {
		return false, err
	}
	return report.Valid, nil
}

func Summarize(report Report) Summary {
	messages := func(kind Kind) []string {
		return lo.Map(
			lo.Filter(
				report.Entries,
				func(entry Entry, _ int) bool {
					return entry.Kind == kind
				},
			),
			func(entry Entry, _ int) string {
				return entry.Message
			},
		)
	}
	return Summary{
		Info:   messages(KindInfo),
		Errors: messages(KindError),
	}
}

func (r Report) Errors() []Entry {
	return lo.Filter(
		r.Entries,
		func(entry Entry, _ int) bool {
			return entry.Kind == KindError
		},
	)
}
