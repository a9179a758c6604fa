// Package locate resolves module names to on-disk locations using the OS
// loader's search order, and discovers the dumpbin tool itself.
package locate

import (
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	errUtils "github.com/forrestthewoods/fts-depends/errors"
	log "github.com/forrestthewoods/fts-depends/pkg/logger"
)

const dumpbinExe = "dumpbin.exe"

// visualStudioRoots are the install roots searched for dumpbin.exe when it is
// not on PATH.
var visualStudioRoots = []string{
	`C:\Program Files\Microsoft Visual Studio`,
	`C:\Program Files (x86)\Microsoft Visual Studio`,
}

// Resolve maps a module name plus a preferred search directory to an absolute
// path. The preferred directory (normally the directory of the referencing
// module) is probed first; the process PATH is the fallback. First match wins.
// Returns ErrNotFound when the module resolves nowhere.
func Resolve(name string, preferredDir string) (string, error) {
	// A name carrying a directory component is an explicit path (the root
	// target is typically given this way).
	if strings.ContainsAny(name, `/\`) {
		if fileExists(name) {
			return filepath.Abs(name)
		}
		return "", errors.Wrapf(errUtils.ErrNotFound, "%s", name)
	}

	candidate := filepath.Join(preferredDir, name)
	if fileExists(candidate) {
		return filepath.Abs(candidate)
	}

	if located, err := exec.LookPath(name); err == nil {
		return filepath.Abs(located)
	}

	return "", errors.Wrapf(errUtils.ErrNotFound, "%s", name)
}

// FindDumpbin locates dumpbin.exe: PATH first, then a recursive walk over the
// Visual Studio install roots. Walk errors (missing roots, unreadable
// directories) are ignored.
func FindDumpbin() (string, error) {
	return findDumpbinIn(visualStudioRoots)
}

func findDumpbinIn(roots []string) (string, error) {
	if path, err := exec.LookPath(dumpbinExe); err == nil {
		return path, nil
	}

	for _, root := range roots {
		var found string
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if !d.IsDir() && strings.EqualFold(d.Name(), dumpbinExe) {
				found = path
				return fs.SkipAll
			}
			return nil
		})
		if found != "" {
			log.Debug("Found dumpbin", "path", found)
			return found, nil
		}
	}

	return "", errUtils.ErrDumpbinNotFound
}

// fileExists checks if a file exists and is not a directory.
func fileExists(filename string) bool {
	fileInfo, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !fileInfo.IsDir()
}
