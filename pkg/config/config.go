// Package config merges fts-depends configuration from defaults, an optional
// config file, environment variables and command-line flags.
package config

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/forrestthewoods/fts-depends/pkg/logger"
	"github.com/forrestthewoods/fts-depends/pkg/schema"
)

const (
	configName = "fts-depends"
	configType = "yaml"
	envPrefix  = "FTS_DEPENDS"
)

// flagBindings maps configuration keys to the flags that override them.
var flagBindings = map[string]string{
	"dumpbin":     "dumpbin",
	"show_system": "show-system",
	"format":      "format",
	"timeout":     "timeout",
	"logs.level":  "logs-level",
	"logs.file":   "logs-file",
}

// LoadConfig builds the effective configuration. Precedence, lowest first:
// built-in defaults, `fts-depends.yaml` (XDG config dir, then the current
// directory), `FTS_DEPENDS_*` environment variables, command-line flags.
func LoadConfig(flags *pflag.FlagSet) (schema.Configuration, error) {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(filepath.Join(xdg.ConfigHome, configName))
	v.AddConfigPath(".")

	v.SetDefault("dumpbin", "")
	v.SetDefault("show_system", false)
	v.SetDefault("format", schema.FormatTable)
	v.SetDefault("timeout", schema.DefaultTimeout)
	v.SetDefault("logs.level", logger.LogLevelInfo)
	v.SetDefault("logs.file", "/dev/stderr")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return schema.Configuration{}, errors.Wrap(err, "failed to read config file")
		}
	}

	if flags != nil {
		for key, name := range flagBindings {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return schema.Configuration{}, err
				}
			}
		}
	}

	var cfg schema.Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return schema.Configuration{}, errors.Wrap(err, "failed to unmarshal config")
	}
	return cfg, nil
}
