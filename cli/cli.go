package cli

import (
	"fmt"
	"io"
	"os"

	"dpx-validator/dpx"
	"dpx-validator/ui"
	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
)

const (
	ExitValid   = 0
	ExitInvalid = 1
	ExitUsage   = 2
)

func validate(paths []string, mode dpx.Mode) []dpx.Report {
	L.Debug("validating files", "count", len(paths), "mode", mode.String())
	reports := dpx.ValidateFiles(paths, mode)
	for _, report := range reports {
		L.Debug(
			"validated file",
			"path", report.Path,
			"valid", report.Valid,
			"entries", len(report.Entries),
			"errors", len(report.Errors()),
		)
	}
	return reports
}

func StartValidating(cmd ValidateCmd, stdout io.Writer, stderr io.Writer) int {
	InitLogger(stderr, cmd.Verbose)
	reports := validate(cmd.Paths, modeOf(cmd.FailFast))

	if cmd.JSON {
		if err := WriteJSON(stdout, reports); err != nil {
			fmt.Fprintln(stderr, err)
			return ExitInvalid
		}
		return ExitCode(reports)
	}

	for _, report := range reports {
		WriteText(stdout, stderr, report, cmd.Quiet)
	}
	return ExitCode(reports)
}

func StartInteractive(cmd InteractiveCmd, stderr io.Writer) int {
	reports := validate(cmd.Paths, modeOf(cmd.FailFast))
	if err := ui.Start(reports); err != nil {
		err := errors.Wrap(err, "StartInteractive error")
		fmt.Fprintln(stderr, err)
		return ExitInvalid
	}
	return ExitCode(reports)
}

// Run parses argv (without the program name) and returns the exit code.
func Run(argv []string, stdout io.Writer, stderr io.Writer) int {
	args := Args{}
	parser, err := arg.NewParser(arg.Config{Program: "dpx-validator"}, &args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitUsage
	}

	err = parser.Parse(argv)
	switch {
	case errors.Is(err, arg.ErrHelp):
		parser.WriteHelp(stdout)
		return ExitValid
	case errors.Is(err, arg.ErrVersion):
		fmt.Fprintln(stdout, args.Version())
		return ExitValid
	case err != nil:
		parser.WriteUsage(stderr)
		fmt.Fprintln(stderr, "error:", err)
		return ExitUsage
	}

	switch {
	case args.Validate != nil && len(args.Validate.Paths) > 0:
		return StartValidating(*args.Validate, stdout, stderr)
	case args.Interactive != nil && len(args.Interactive.Paths) > 0:
		return StartInteractive(*args.Interactive, stderr)
	case args.Validate != nil || args.Interactive != nil:
		parser.WriteUsage(stderr)
		fmt.Fprintln(stderr, "error: USAGE: dpx-validator validate FILE ...")
		return ExitUsage
	}

	parser.WriteHelp(stderr)
	return ExitUsage
}

func Start() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}
