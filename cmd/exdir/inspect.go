package main

import (
	"crypto/sha256"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/born-ml/exdir/npy"
)

func newInspectCommand(env *cliEnv) *cobra.Command {
	var checksum bool

	cmd := &cobra.Command{
		Use:   "inspect <file.npy>",
		Short: "Print the header of a .npy file",
		Long: `Print the header of a .npy file.

The file is memory-mapped, so large arrays are not read into memory.
With --checksum the SHA-256 of the element bytes is printed as well.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := npy.Map(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = m.Close() }()

			return printInfo(env.stdout, m, checksum)
		},
	}
	cmd.Flags().BoolVar(&checksum, "checksum", false, "Print the SHA-256 of the data section.")
	return cmd
}

func printInfo(w io.Writer, m *npy.Mapped, checksum bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "version:\t%d.%d\n", m.Major, m.Minor)
	fmt.Fprintf(tw, "descr:\t%s\n", m.Descr())
	fmt.Fprintf(tw, "dtype:\t%s\n", m.DType)
	fmt.Fprintf(tw, "fortran_order:\t%t\n", m.FortranOrder)
	fmt.Fprintf(tw, "shape:\t%s\n", shapeString(m.Shape))
	fmt.Fprintf(tw, "elements:\t%s\n", humanize.Comma(int64(m.NumElements())))
	fmt.Fprintf(tw, "data offset:\t%d\n", m.DataOffset)
	fmt.Fprintf(tw, "data size:\t%s (%s bytes)\n",
		humanize.IBytes(uint64(m.DataSize)), humanize.Comma(m.DataSize)) //nolint:gosec // G115: data size is non-negative
	if checksum {
		fmt.Fprintf(tw, "sha256:\t%x\n", sha256.Sum256(m.Data()))
	}
	return tw.Flush()
}
