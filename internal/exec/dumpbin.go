package exec

import (
	"context"
	"os/exec"
	"time"
	"unicode/utf8"

	"github.com/cockroachdb/errors"

	errUtils "github.com/forrestthewoods/fts-depends/errors"
	log "github.com/forrestthewoods/fts-depends/pkg/logger"
	"github.com/forrestthewoods/fts-depends/pkg/schema"
)

// dependentsFlag asks dumpbin for the module's import table.
const dependentsFlag = "/DEPENDENTS"

// DumpbinAnalyzer produces dependency reports by spawning dumpbin. Each
// invocation runs under a timeout so a hung dumpbin cannot block the whole
// run.
type DumpbinAnalyzer struct {
	// Path is the resolved dumpbin.exe location.
	Path string
	// Timeout bounds one invocation; zero means schema.DefaultTimeout.
	Timeout time.Duration
}

// Report runs `dumpbin /DEPENDENTS <modulePath>` and returns its stdout.
// Exit status beyond failure-to-execute is not inspected.
func (a *DumpbinAnalyzer) Report(ctx context.Context, modulePath string) (string, error) {
	timeout := a.Timeout
	if timeout <= 0 {
		timeout = schema.DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, a.Path, dependentsFlag, modulePath)
	// Output waits for the stdout pipe to close, not just for the direct
	// child. WaitDelay forces it to return shortly after the deadline even
	// when a grandchild keeps the pipe open.
	cmd.WaitDelay = 1 * time.Second
	log.Trace("Executing command", "cmd", cmd.String())

	output, err := cmd.Output()
	if err != nil {
		return "", errors.Wrapf(errUtils.ErrReportUnavailable, "running %s %s %s: %v", a.Path, dependentsFlag, modulePath, err)
	}
	if !utf8.Valid(output) {
		return "", errors.Wrapf(errUtils.ErrReportUnavailable, "%s produced undecodable output for %s", a.Path, modulePath)
	}

	return string(output), nil
}
