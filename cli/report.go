package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"dpx-validator/dpx"
	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// WriteText writes one line per entry, info to stdout and errors to stderr,
// followed by the verdict on stdout.
func WriteText(stdout io.Writer, stderr io.Writer, report dpx.Report, quiet bool) {
	for _, entry := range report.Entries {
		switch entry.Kind {
		case dpx.KindInfo:
			if !quiet {
				fmt.Fprintf(stdout, "File %s :: %s\n", report.Path, entry.Message)
			}
		case dpx.KindError:
			fmt.Fprintf(stderr, "File %s :: %s\n", report.Path, entry.Message)
		}
	}

	if report.Valid {
		fmt.Fprintf(stdout, "File %s is valid\n", report.Path)
	} else {
		fmt.Fprintf(stdout, "File %s is invalid\n", report.Path)
	}
}

// ToOrderedMap keys reports by path, keeping the order files were given in.
func ToOrderedMap(reports []dpx.Report) *orderedmap.OrderedMap {
	lhm := orderedmap.New()
	for _, report := range reports {
		summary := dpx.Summarize(report)
		fileLHM := orderedmap.New()
		fileLHM.Set("valid", report.Valid)
		if report.MagicNumber != "" {
			fileLHM.Set("magic_number", report.MagicNumber)
			fileLHM.Set("byte_order", report.ByteOrder)
		}
		if report.Version != "" {
			fileLHM.Set("version", report.Version)
		}
		fileLHM.Set("info", summary.Info)
		fileLHM.Set("errors", summary.Errors)
		lhm.Set(report.Path, fileLHM)
	}
	return lhm
}

func WriteJSON(w io.Writer, reports []dpx.Report) error {
	bs, err := json.MarshalIndent(ToOrderedMap(reports), "", "  ")
	if err != nil {
		return errors.Wrap(err, "WriteJSON error marshalling reports")
	}
	bs = append(bs, '\n')
	if _, err := w.Write(bs); err != nil {
		return errors.Wrap(err, "WriteJSON error writing reports")
	}
	return nil
}

func ExitCode(reports []dpx.Report) int {
	allValid := lo.EveryBy(
		reports,
		func(report dpx.Report) bool {
			return report.Valid
		},
	)
	if allValid {
		return ExitValid
	}
	return ExitInvalid
}
