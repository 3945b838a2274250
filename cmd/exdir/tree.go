package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/born-ml/exdir/exdir"
)

func newTreeCommand(env *cliEnv) *cobra.Command {
	var showAttrs bool

	cmd := &cobra.Command{
		Use:   "tree <dir>",
		Short: "Print the object hierarchy of an exdir file",
		Long: `Print the object hierarchy of an exdir file.

Datasets are listed with their data type, shape, memory order and data size.
Only .npy headers are read.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := exdir.Open(args[0], env.options()...)
			if err != nil {
				return err
			}
			root := f.Path()

			return exdir.Walk(f.Group, func(path string, obj any, err error) error {
				rel, _ := filepath.Rel(root, path)
				depth := 0
				if rel != "." {
					depth = strings.Count(filepath.ToSlash(rel), "/") + 1
				}
				indent := strings.Repeat("  ", depth)
				name := filepath.Base(path)

				if err != nil {
					fmt.Fprintf(env.stdout, "%s%s  [error: %v]\n", indent, name, err)
					return nil
				}

				var o *exdir.Object
				switch v := obj.(type) {
				case *exdir.Group:
					o = &v.Object
					fmt.Fprintf(env.stdout, "%s%s/\n", indent, name)
				case *exdir.DatasetHeader:
					o = &v.Object
					info := v.Info
					fmt.Fprintf(env.stdout, "%s%s  %s %s %s  %s\n", indent, name,
						info.DType, shapeString(info.Shape), orderString(info.FortranOrder),
						humanize.IBytes(uint64(info.DataSize))) //nolint:gosec // G115: data size is non-negative
				case *exdir.Raw:
					o = &v.Object
					fmt.Fprintf(env.stdout, "%s%s  [raw]\n", indent, name)
				}

				if showAttrs && o != nil {
					for _, key := range o.AttrNames() {
						value, _ := o.Attr(key)
						fmt.Fprintf(env.stdout, "%s  @%s = %v\n", indent, key, value)
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&showAttrs, "attrs", "a", false, "Also print attributes.")
	return cmd
}

func shapeString(shape []int) string {
	parts := make([]string, len(shape))
	for i, d := range shape {
		parts[i] = fmt.Sprint(d)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func orderString(fortran bool) string {
	if fortran {
		return "F"
	}
	return "C"
}
