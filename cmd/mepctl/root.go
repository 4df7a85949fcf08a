package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"writeyourmep/internal/directory"
	"writeyourmep/internal/platform/config"
	"writeyourmep/internal/platform/logger"
)

type rootOptions struct {
	directoryPath string
	verbose       bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{directoryPath: config.Default().Directory.Path}
	if cfg, err := config.Load(); err == nil {
		opts.directoryPath = cfg.Directory.Path
	}

	root := &cobra.Command{
		Use:           "mepctl",
		Short:         "Inspect the MEP directory and render advocacy letters",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.directoryPath, "directory", opts.directoryPath, "path to members_by_country.json")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log diagnostics to stderr")

	root.AddCommand(
		newCountriesCmd(opts),
		newMepsCmd(opts),
		newDecodeCmd(),
		newEncodeCmd(),
		newLetterCmd(),
	)
	return root
}

func (o *rootOptions) logger(cmd *cobra.Command) *slog.Logger {
	if !o.verbose {
		return logger.NewWithWriter(io.Discard, false)
	}
	return logger.NewWithWriter(cmd.ErrOrStderr(), true)
}

// store loads the directory once; a missing or malformed file yields an
// empty directory, as in the server.
func (o *rootOptions) store(ctx context.Context, cmd *cobra.Command) *directory.Store {
	return directory.NewStore(ctx, directory.NewFileLoader(o.directoryPath), o.logger(cmd))
}
