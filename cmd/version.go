package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/forrestthewoods/fts-depends/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Print the CLI version",
	Long:    `This command prints the CLI version`,
	Example: "fts-depends version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fts-depends %s on %s/%s\n", version.Version, runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
