package exec

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/forrestthewoods/fts-depends/errors"
	"github.com/forrestthewoods/fts-depends/pkg/format"
	"github.com/forrestthewoods/fts-depends/pkg/schema"
)

// fakeDumpbin writes a shell script that plays dumpbin: it prints a report
// for app.exe and an empty report for everything else.
func fakeDumpbin(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	script := `#!/bin/sh
case "${2##*/}" in
  app.exe)
    printf '  Image has the following dependencies:\n\n    user32.dll\n    mylib.dll\n\n  Summary\n'
    ;;
  *)
    printf '  Summary\n'
    ;;
esac
`
	path := filepath.Join(t.TempDir(), "dumpbin")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestDumpbinAnalyzerReport(t *testing.T) {
	dumpbin := fakeDumpbin(t)
	analyzer := &DumpbinAnalyzer{Path: dumpbin}

	raw, err := analyzer.Report(context.Background(), "/app/app.exe")
	require.NoError(t, err)
	assert.Contains(t, raw, "Image has the following dependencies:")
	assert.Contains(t, raw, "mylib.dll")
}

func TestDumpbinAnalyzerSpawnFailure(t *testing.T) {
	analyzer := &DumpbinAnalyzer{Path: filepath.Join(t.TempDir(), "missing-dumpbin")}

	_, err := analyzer.Report(context.Background(), "/app/app.exe")
	assert.True(t, errors.Is(err, errUtils.ErrReportUnavailable))
}

func TestDumpbinAnalyzerTimeout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	script := "#!/bin/sh\nsleep 10\n"
	path := filepath.Join(t.TempDir(), "dumpbin")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))

	analyzer := &DumpbinAnalyzer{Path: path, Timeout: 50 * time.Millisecond}

	start := time.Now()
	_, err := analyzer.Report(context.Background(), "/app/app.exe")
	assert.True(t, errors.Is(err, errUtils.ErrReportUnavailable))
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestExecuteDepends(t *testing.T) {
	dumpbin := fakeDumpbin(t)

	// Target directory with the app and one local dependency.
	appDir := t.TempDir()
	target := filepath.Join(appDir, "app.exe")
	require.NoError(t, os.WriteFile(target, []byte("MZ"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(appDir, "mylib.dll"), []byte("MZ"), 0o644))

	// user32.dll lives in a simulated system directory reachable via PATH.
	systemDir := filepath.Join(t.TempDir(), "Windows", "System32")
	require.NoError(t, os.MkdirAll(systemDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(systemDir, "user32.dll"), []byte("MZ"), 0o755))
	// Prepend so the shell and coreutils stay reachable for the fake script.
	t.Setenv("PATH", systemDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	cfg := schema.Configuration{
		Dumpbin: dumpbin,
		Format:  schema.FormatJSON,
	}

	out, err := ExecuteDepends(context.Background(), &cfg, target, format.Options{})
	require.NoError(t, err)

	var root map[string]interface{}
	require.NoError(t, jsoniter.Unmarshal([]byte(out), &root))
	assert.Equal(t, "app.exe", root["name"])

	// user32.dll is filtered by the system-path policy; only mylib.dll stays.
	children, ok := root["children"].([]interface{})
	require.True(t, ok)
	require.Len(t, children, 1)
	child := children[0].(map[string]interface{})
	assert.Equal(t, "mylib.dll", child["name"])
	assert.Equal(t, "resolved", child["kind"])
}

func TestExecuteDependsShowSystem(t *testing.T) {
	dumpbin := fakeDumpbin(t)

	appDir := t.TempDir()
	target := filepath.Join(appDir, "app.exe")
	require.NoError(t, os.WriteFile(target, []byte("MZ"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(appDir, "mylib.dll"), []byte("MZ"), 0o644))

	systemDir := filepath.Join(t.TempDir(), "Windows", "System32")
	require.NoError(t, os.MkdirAll(systemDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(systemDir, "user32.dll"), []byte("MZ"), 0o755))
	t.Setenv("PATH", systemDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	cfg := schema.Configuration{
		Dumpbin:    dumpbin,
		ShowSystem: true,
		Format:     schema.FormatJSON,
	}

	out, err := ExecuteDepends(context.Background(), &cfg, target, format.Options{})
	require.NoError(t, err)

	var root map[string]interface{}
	require.NoError(t, jsoniter.Unmarshal([]byte(out), &root))
	children, ok := root["children"].([]interface{})
	require.True(t, ok)
	assert.Len(t, children, 2)
}

func TestExecuteDependsMissingDumpbin(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	cfg := schema.Configuration{}
	_, err := ExecuteDepends(context.Background(), &cfg, "/app/app.exe", format.Options{})
	assert.True(t, errors.Is(err, errUtils.ErrDumpbinNotFound))
}

func TestExecuteDependsMissingTarget(t *testing.T) {
	dumpbin := fakeDumpbin(t)
	t.Setenv("PATH", t.TempDir())

	cfg := schema.Configuration{Dumpbin: dumpbin}
	_, err := ExecuteDepends(context.Background(), &cfg, filepath.Join(t.TempDir(), "ghost.exe"), format.Options{})
	assert.True(t, errors.Is(err, errUtils.ErrNotFound))
}
