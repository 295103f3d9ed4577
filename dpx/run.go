package dpx

import (
	"io"

	"dpx-validator/dpx/dcheck"
	"dpx-validator/dpx/dheader"
	"dpx-validator/dpx/lbytes"
	"github.com/pkg/errors"
)

type (
	// Run is the state of validating one file. Not safe for concurrent use.
	Run struct {
		length int64
		reader *lbytes.Reader
		report Report
	}
	// Step pairs a header field with the check applied to it. The check
	// returns an informational message, or an error that is either a
	// *dcheck.InvalidFieldError or a read failure.
	Step struct {
		Spec  dheader.FieldSpec
		Check func(run *Run) (string, error)
	}
)

// Steps are run in this order. The magic number comes first since it sets
// the byte order of the run.
var Steps = []Step{
	{dheader.MagicNumber, checkMagicNumber},
	{dheader.ImageOffset, checkOffsetToImage},
	{dheader.Version, checkVersion},
	{dheader.FileSize, checkFilesize},
	{dheader.EncryptionKey, checkUnencrypted},
}

func newRun(handle io.ReadSeeker, path string) *Run {
	return &Run{
		reader: lbytes.NewReader(handle),
		report: Report{
			Path:    path,
			Valid:   true,
			Entries: []Entry{},
		},
	}
}

func (r *Run) addInfo(field dheader.FieldName, message string) {
	r.report.Entries = append(r.report.Entries, Entry{Kind: KindInfo, Field: field, Message: message})
}

func (r *Run) addError(field dheader.FieldName, message string) {
	r.report.Valid = false
	r.report.Entries = append(r.report.Entries, Entry{Kind: KindError, Field: field, Message: message})
}

func checkMagicNumber(run *Run) (string, error) {
	field, err := dheader.ReadBytes(run.reader, dheader.MagicNumber)
	if err != nil {
		return "", err
	}
	info, order, err := dcheck.CheckMagicNumber(field)
	if err != nil {
		return "", err
	}
	run.reader.SetByteOrder(order)
	run.report.MagicNumber = string(field)
	run.report.ByteOrder = order.String()
	return info, nil
}

func checkOffsetToImage(run *Run) (string, error) {
	field, err := dheader.ReadUint32(run.reader, dheader.ImageOffset)
	if err != nil {
		return "", err
	}
	return dcheck.CheckOffsetToImage(field, run.length)
}

func checkVersion(run *Run) (string, error) {
	field, err := dheader.ReadBytes(run.reader, dheader.Version)
	if err != nil {
		return "", err
	}
	version, info, err := dcheck.CheckVersion(field)
	if err != nil {
		return "", err
	}
	run.report.Version = version
	return info, nil
}

func checkFilesize(run *Run) (string, error) {
	field, err := dheader.ReadUint32(run.reader, dheader.FileSize)
	if err != nil {
		return "", err
	}
	return dcheck.CheckFilesize(field, run.length)
}

func checkUnencrypted(run *Run) (string, error) {
	field, err := dheader.ReadUint32(run.reader, dheader.EncryptionKey)
	if err != nil {
		return "", err
	}
	return dcheck.CheckUnencrypted(field)
}

// execute runs steps in order. Read failures always end the run;
// invalid fields end it only in fail-fast mode.
func (r *Run) execute(steps []Step, mode Mode) {
	for _, step := range steps {
		info, err := step.Check(r)
		var invalidField *dcheck.InvalidFieldError
		switch {
		case err == nil:
			r.addInfo(step.Spec.Name, info)
		case errors.As(err, &invalidField):
			r.addError(invalidField.Field, invalidField.Reason)
			if mode == ModeFailFast {
				return
			}
		default:
			// nothing after a failed read can be trusted
			r.addError(FieldNameRead, "field read error: "+err.Error())
			return
		}
	}
}
