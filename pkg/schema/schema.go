package schema

import "time"

// Configuration holds all settings for one fts-depends run.
// It is merged from defaults, an optional `fts-depends.yaml`, `FTS_DEPENDS_*`
// environment variables and command-line flags, in that order of precedence.
type Configuration struct {
	// Dumpbin is the path to `dumpbin.exe`. When empty, the tool is discovered
	// on PATH and then under the Visual Studio install roots.
	Dumpbin string `yaml:"dumpbin" json:"dumpbin" mapstructure:"dumpbin"`

	// ShowSystem disables both system filters (name prefixes and system
	// install directories) so every module appears in the output.
	ShowSystem bool `yaml:"show_system" json:"show_system" mapstructure:"show_system"`

	// Format selects the output renderer: `table`, `tree` or `json`.
	Format string `yaml:"format" json:"format" mapstructure:"format"`

	// Timeout bounds a single dumpbin invocation.
	Timeout time.Duration `yaml:"timeout" json:"timeout" mapstructure:"timeout"`

	Logs Logs `yaml:"logs" json:"logs" mapstructure:"logs"`
}

// Logs configures the logger.
type Logs struct {
	// File is the log destination. Logs go to `/dev/stderr` by default.
	File string `yaml:"file" json:"file" mapstructure:"file"`
	// Level is one of Trace, Debug, Info, Warning, Off.
	Level string `yaml:"level" json:"level" mapstructure:"level"`
}

// Output formats supported by the renderers.
const (
	FormatTable = "table"
	FormatTree  = "tree"
	FormatJSON  = "json"
)

// DefaultTimeout is applied when no timeout is configured.
const DefaultTimeout = 30 * time.Second
