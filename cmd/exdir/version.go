package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "v0.1.0-dev"

func newVersionCommand(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(env.stdout, "exdir %s\n", version)
		},
	}
}
