// Package exec implements the top-level fts-depends operations invoked by
// the CLI commands.
package exec

import (
	"context"
	"path/filepath"

	"github.com/forrestthewoods/fts-depends/pkg/dependency"
	"github.com/forrestthewoods/fts-depends/pkg/format"
	"github.com/forrestthewoods/fts-depends/pkg/locate"
	log "github.com/forrestthewoods/fts-depends/pkg/logger"
	"github.com/forrestthewoods/fts-depends/pkg/schema"
)

// ExecuteDepends resolves the full dependency tree for the target binary and
// returns it rendered in the configured format.
func ExecuteDepends(ctx context.Context, cfg *schema.Configuration, target string, options format.Options) (string, error) {
	dumpbin := cfg.Dumpbin
	if dumpbin == "" {
		located, err := locate.FindDumpbin()
		if err != nil {
			return "", err
		}
		dumpbin = located
	}
	log.Debug("Using dumpbin", "path", dumpbin)

	analyzer := &DumpbinAnalyzer{Path: dumpbin, Timeout: cfg.Timeout}
	resolver := dependency.NewResolver(analyzer, dependency.Options{ShowSystem: cfg.ShowSystem})

	root, err := resolver.Resolve(ctx, target, filepath.Dir(target))
	if err != nil {
		return "", err
	}
	log.Debug("Resolved dependency tree", "target", root.Name, "modules", root.Count())

	return format.Render(root, cfg.Format, options)
}
