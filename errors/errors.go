package errors

import (
	"os"

	"github.com/cockroachdb/errors"
)

// OsExit is a variable for testing, so we can mock os.Exit.
var OsExit = os.Exit

// Sentinel errors returned by the resolver and its collaborators.
// Wrap them with errors.Wrapf and detect them with errors.Is.
var (
	// ErrDumpbinNotFound means dumpbin.exe was found neither on PATH nor
	// under any of the Visual Studio install roots.
	ErrDumpbinNotFound = errors.New("failed to find dumpbin.exe")

	// ErrNotFound means a module name resolved to no on-disk location.
	ErrNotFound = errors.New("file not found")

	// ErrReportUnavailable means the analysis tool could not be executed or
	// its output could not be decoded.
	ErrReportUnavailable = errors.New("dependency report unavailable")

	// ErrInvalidFormat means an unsupported output format was requested.
	ErrInvalidFormat = errors.New("invalid output format")

	// ErrInvalidLogLevel means the configured log level is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
)
