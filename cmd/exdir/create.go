package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/born-ml/exdir/exdir"
)

func newCreateCommand(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "create <dir>",
		Short: "Create an empty exdir file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := exdir.CreateFile(args[0], env.options()...)
			if err != nil {
				return err
			}
			fmt.Fprintf(env.stdout, "created %s\n", f.Path())
			return nil
		},
	}
}

func newMkgroupCommand(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "mkgroup <file> <group/path>",
		Short: "Create a group and any missing parent groups",
		Long: `Create a group and any missing parent groups.

Path components are separated by '/'. Existing groups along the path are
reused; a component that exists as a dataset or raw is an error.
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := exdir.Open(args[0], env.options()...)
			if err != nil {
				return err
			}

			g := f.Group
			for _, name := range strings.Split(strings.Trim(args[1], "/"), "/") {
				if g, err = g.RequireGroup(name); err != nil {
					return err
				}
			}
			fmt.Fprintln(env.stdout, g.Path())
			return nil
		},
	}
}
