package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/margined-protocol/mrgnd-perpetuals/deploy-cli/conf"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "To print the version",
		Args:  cobra.NoArgs,
		// the version needs no config
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), conf.BuildVersion())
		},
	}
}
