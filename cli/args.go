package cli

import (
	"strings"

	"dpx-validator/dpx"
)

type (
	Args struct {
		Validate    *ValidateCmd    `arg:"subcommand:validate" help:"validate DPX file headers"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive" help:"browse validation results"`
	}
	ValidateCmd struct {
		Paths    []string `arg:"positional" help:"DPX files to validate" placeholder:"FILE"`
		FailFast bool     `arg:"--fail-fast,env:DPXV_FAIL_FAST" help:"stop checking a file at its first invalid field"`
		JSON     bool     `arg:"--json" help:"print results as JSON"`
		Quiet    bool     `arg:"-q,--quiet" help:"only print errors and the verdict"`
		Verbose  bool     `arg:"-v,--verbose,env:DPXV_VERBOSE" help:"write debug logs to stderr"`
	}
	InteractiveCmd struct {
		Paths    []string `arg:"positional" help:"DPX files to validate" placeholder:"FILE"`
		FailFast bool     `arg:"--fail-fast,env:DPXV_FAIL_FAST" help:"stop checking a file at its first invalid field"`
	}
)

const version = "dpx-validator 0.3.0"

func (Args) Description() string {
	return strings.Join(
		[]string{
			"Validate the header of DPX (Digital Picture Exchange) files:",
			"magic number, byte order, offset to image, version, file size",
			"and encryption key.",
		},
		"\n",
	) + "\n"
}

func (Args) Version() string {
	return version
}

func modeOf(failFast bool) dpx.Mode {
	if failFast {
		return dpx.ModeFailFast
	}
	return dpx.ModeCollectAll
}
