package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"toboggan/internal/app"
)

var (
	verbose bool
	logger  *zap.Logger
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "toboggan [input-file]",
		Short:        "Count the trees hit sledding down a toboggan map",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if verbose {
				level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger = newLogger(cmd.ErrOrStderr(), level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// PersistentPostRun is skipped when RunE fails.
			defer func() { _ = logger.Sync() }()

			// Arguments after the input file are ignored.
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "input filename is required")
				return nil
			}
			a := app.New(app.Config{Out: cmd.OutOrStdout(), Logger: logger})
			return a.Run(args[0])
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each traversal to stderr")
	return root
}

// newLogger builds a production-style JSON logger writing to w.
func newLogger(w io.Writer, level zap.AtomicLevel) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)
	return zap.New(core, zap.AddCaller())
}
