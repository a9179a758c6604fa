package version

// Version holds the fts-depends version. Overridden at build time via
// -ldflags "-X github.com/forrestthewoods/fts-depends/pkg/version.Version=...".
var Version = "0.0.1"
