package cmd

import (
	"fmt"
	"os"

	gnsyn "github.com/gnames/gnsyn/pkg"
	"github.com/gnames/gnsyn/pkg/config"
	"github.com/spf13/cobra"
)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", gnsyn.Version, gnsyn.Build)
		os.Exit(0)
	}
}

// stringOpt appends an option if the flag was set by user.
func stringOpt(
	cmd *cobra.Command,
	opts []config.Option,
	name string,
	opt func(string) config.Option,
) []config.Option {
	if !cmd.Flags().Changed(name) {
		return opts
	}
	s, _ := cmd.Flags().GetString(name)
	return append(opts, opt(s))
}
