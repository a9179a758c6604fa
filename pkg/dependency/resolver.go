package dependency

import (
	"context"
	"path/filepath"

	"github.com/cockroachdb/errors"

	errUtils "github.com/forrestthewoods/fts-depends/errors"
	"github.com/forrestthewoods/fts-depends/pkg/classify"
	"github.com/forrestthewoods/fts-depends/pkg/locate"
	log "github.com/forrestthewoods/fts-depends/pkg/logger"
	"github.com/forrestthewoods/fts-depends/pkg/report"
)

// ErrSystemTarget is returned when the root target itself is classified as a
// system module and the system filters are enabled.
var ErrSystemTarget = errors.New("target is a system module")

// Resolver walks a module's transitive dependencies depth-first. It owns the
// visited table for one run; a Resolver must not be reused across runs.
type Resolver struct {
	analyzer   Analyzer
	locator    Locator
	classifier classify.Classifier

	// visited interns the first node produced for each bare module name.
	// Membership alone marks a name as processed; a nil value means the
	// first encounter was suppressed by policy (or is still in flight), so
	// repeats stay invisible rather than referencing a node that is not in
	// the tree.
	visited map[string]*Node
}

// Options configures a Resolver.
type Options struct {
	// ShowSystem disables the system filters.
	ShowSystem bool
	// Locator overrides location resolution; defaults to locate.Resolve.
	Locator Locator
}

// NewResolver creates a Resolver for a single run.
func NewResolver(analyzer Analyzer, opts Options) *Resolver {
	locator := opts.Locator
	if locator == nil {
		locator = locate.Resolve
	}
	return &Resolver{
		analyzer:   analyzer,
		locator:    locator,
		classifier: classify.Classifier{ShowSystem: opts.ShowSystem},
		visited:    make(map[string]*Node),
	}
}

// Resolve builds the full dependency tree for target, which is either a bare
// module name or a path. searchDir is consulted first when resolving it.
// Failures on the root are fatal; failures below it degrade to error leaves.
func (r *Resolver) Resolve(ctx context.Context, target string, searchDir string) (*Node, error) {
	node, outcome, err := r.resolveModule(ctx, target, searchDir, true)
	if err != nil {
		return nil, err
	}
	if outcome.Skip() {
		return nil, errors.Wrapf(ErrSystemTarget, "%s", target)
	}
	return node, nil
}

// resolveModule handles one module: classify, locate, analyze, recurse.
// A nil node with an Accept outcome never happens; a nil node with a skip
// outcome means the branch is suppressed and the caller omits it entirely.
func (r *Resolver) resolveModule(ctx context.Context, name string, searchDir string, root bool) (*Node, classify.Outcome, error) {
	key := filepath.Base(name)

	// The name filter runs before any file-system probing; API-set stubs
	// never get resolved at all.
	if outcome := r.classifier.ClassifyName(key); outcome.Skip() {
		log.Trace("Skipping module", "name", key, "reason", outcome.String())
		return nil, outcome, nil
	}

	location, err := r.locator(name, searchDir)
	if err != nil {
		if root {
			return nil, classify.Accept, errors.Wrapf(err, "failed to resolve target '%s'", name)
		}
		node := &Node{Name: key, Kind: KindNotFound}
		r.visited[key] = node
		return node, classify.Accept, nil
	}

	if outcome := r.classifier.ClassifyPath(location); outcome.Skip() {
		log.Trace("Skipping module", "name", key, "location", location, "reason", outcome.String())
		return nil, outcome, nil
	}

	raw, err := r.analyzer.Report(ctx, location)
	if err != nil {
		if root {
			return nil, classify.Accept, errors.Wrapf(errUtils.ErrReportUnavailable, "%s: %v", location, err)
		}
		// One unreadable module must not blank out the rest of the graph.
		log.Debug("Report unavailable", "module", key, "error", err)
		node := &Node{Name: key, Location: location, Kind: KindError, Err: err.Error()}
		r.visited[key] = node
		return node, classify.Accept, nil
	}

	node := &Node{Name: filepath.Base(location), Location: location, Kind: KindResolved}

	// Intern before expanding children so the name is never re-expanded,
	// which also terminates self-referential graphs.
	r.visited[key] = node

	childDir := filepath.Dir(location)
	for _, dep := range report.Parse(raw) {
		if prior, seen := r.visited[dep]; seen {
			// Only point back at modules that actually resolved; repeats
			// of suppressed, missing or errored modules stay invisible.
			if prior != nil && prior.Kind == KindResolved {
				node.Children = append(node.Children, &Node{
					Name:     dep,
					Location: prior.Location,
					Kind:     KindReference,
				})
			}
			continue
		}
		r.visited[dep] = nil

		child, outcome, err := r.resolveModule(ctx, dep, childDir, false)
		if err != nil {
			return nil, classify.Accept, err
		}
		if outcome.Skip() {
			continue
		}
		node.Children = append(node.Children, child)
	}

	return node, classify.Accept, nil
}
