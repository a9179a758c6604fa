package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	e "github.com/forrestthewoods/fts-depends/internal/exec"
	cfg "github.com/forrestthewoods/fts-depends/pkg/config"
	"github.com/forrestthewoods/fts-depends/pkg/format"
	log "github.com/forrestthewoods/fts-depends/pkg/logger"
	"github.com/forrestthewoods/fts-depends/pkg/schema"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "fts-depends [flags] <binary>",
	Short: "Calculate the dependencies of a native binary",
	Long: `fts-depends calculates the full dependency tree of a native Windows binary
by recursively invoking 'dumpbin /DEPENDENTS' and resolving each reported
module with the OS loader's search order`,
	Example: "fts-depends --format tree app.exe",
	Args:    cobra.ExactArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Determine if the command is a help command or if the help flag is set
		isHelpRequested := cmd.Name() == "help" || cmd.Flags().Changed("help")

		if isHelpRequested {
			// Do not silence usage or errors when help is invoked
			cmd.SilenceUsage = false
			cmd.SilenceErrors = false
		} else {
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := cfg.LoadConfig(cmd.Flags())
		if err != nil {
			return err
		}

		// -d/--tree is shorthand for --format tree.
		if treePrint, _ := cmd.Flags().GetBool("tree"); treePrint && !cmd.Flags().Changed("format") {
			config.Format = schema.FormatTree
		}

		logger, err := log.NewLoggerFromConfig(&config)
		if err != nil {
			return err
		}
		log.SetDefault(logger)

		output, err := e.ExecuteDepends(cmd.Context(), &config, args[0], format.Options{
			TTY: isatty.IsTerminal(os.Stdout.Fd()),
		})
		if err != nil {
			return err
		}

		_, err = fmt.Fprint(cmd.OutOrStdout(), output)
		return err
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.Flags().String("dumpbin", "", "Path to dumpbin.exe. When omitted, dumpbin is discovered on PATH and under the Visual Studio install roots")
	RootCmd.Flags().BoolP("show-system", "s", false, "Enable to show system libraries")
	RootCmd.Flags().BoolP("tree", "d", false, "Enable to print dependencies as a tree (same as --format tree)")
	RootCmd.Flags().String("format", schema.FormatTable, "Output format: table, tree or json")
	RootCmd.Flags().Duration("timeout", schema.DefaultTimeout, "Timeout for a single dumpbin invocation")

	RootCmd.PersistentFlags().String("logs-level", "Info", "Logs level. Supported log levels are Trace, Debug, Info, Warning, Off")
	RootCmd.PersistentFlags().String("logs-file", "/dev/stderr", "The file to write logs to. Logs can be written to any file or any standard file descriptor, including '/dev/stdout', '/dev/stderr' and '/dev/null'")
}
