package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/born-ml/exdir/exdir"
)

// cliEnv carries the streams and logger shared by all subcommands.
type cliEnv struct {
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	verbose bool
	logger  *zap.Logger
}

func (e *cliEnv) options() []exdir.Option {
	return []exdir.Option{exdir.WithLogger(e.logger)}
}

// NewRootCommand builds the exdir command tree writing to the given streams.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	env := &cliEnv{stdin: stdin, stdout: stdout, stderr: stderr, logger: zap.NewNop()}

	rc := &cobra.Command{
		Use:   "exdir",
		Short: "Create and inspect Exdir directory hierarchies and .npy files.",
		Long: `Create and inspect Exdir directory hierarchies and .npy files.

An Exdir file is a directory tree of groups, datasets and raw directories.
Every object records its type in exdir.yaml, attributes live in
attributes.yaml and dataset arrays are stored as NumPy .npy files.
`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			env.logger = newLogger(env.verbose, env.stderr)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = env.logger.Sync()
		},
	}
	rc.PersistentFlags().BoolVarP(&env.verbose, "verbose", "v", false, "Log every object created or written.")

	rc.AddCommand(newVersionCommand(env))
	rc.AddCommand(newCreateCommand(env))
	rc.AddCommand(newMkgroupCommand(env))
	rc.AddCommand(newTreeCommand(env))
	rc.AddCommand(newInspectCommand(env))
	rc.AddCommand(newAttrsCommand(env))

	rc.SetIn(stdin)
	rc.SetOut(stdout)
	rc.SetErr(stderr)
	return rc
}

// newLogger logs warnings to w, or everything from debug up when verbose.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(w), level)
	return zap.New(core)
}
