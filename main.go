package main

import (
	"os"

	"github.com/forrestthewoods/fts-depends/cmd"
	errUtils "github.com/forrestthewoods/fts-depends/errors"
	log "github.com/forrestthewoods/fts-depends/pkg/logger"
	"github.com/forrestthewoods/fts-depends/pkg/ui/theme"
)

func main() {
	// Run the application and exit with the appropriate code.
	// Use errUtils.OsExit to allow test interception.
	errUtils.OsExit(run())
}

// run executes the main application logic and returns an exit code.
// This separation allows proper cleanup via defer before os.Exit in main().
func run() int {
	err := cmd.Execute()
	if err != nil {
		_, _ = theme.Colors.Error.Fprintln(os.Stderr, err.Error())

		exitCode := errUtils.GetExitCode(err)
		log.Debug("Exiting with exit code", "code", exitCode)
		return exitCode
	}

	return 0
}
