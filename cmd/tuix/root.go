package main

import (
	"io"
	"log/slog"

	"github.com/grindlemire/tuix/internal/logging"
	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	logFile  string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:   "tuix",
		Short: "Lay out and draw terminal component trees",
		Long: `tuix reads a component tree from a YAML document, lays it out in the
terminal grid and draws it, either once to stdout or interactively.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "Write logs to this file (default $"+logging.EnvVar+")")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn or error")

	root.AddCommand(
		newRenderCmd(opts),
		newRunCmd(opts),
		newCheckCmd(opts),
		newVersionCmd(),
	)
	return root
}

func (o *globalOptions) logger() (*slog.Logger, io.Closer, error) {
	level, err := logging.ParseLevel(o.logLevel)
	if err != nil {
		return nil, nil, err
	}
	return logging.Setup(o.logFile, level)
}
