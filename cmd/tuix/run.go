package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grindlemire/tuix"
	"github.com/grindlemire/tuix/internal/document"
	"github.com/grindlemire/tuix/internal/metrics"
	"github.com/spf13/cobra"
)

type runOptions struct {
	backend     string
	metricsAddr string
}

func newRunCmd(global *globalOptions) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Show a document interactively",
		Long: `Shows the document in the alternate screen and redraws it on resize.
Arrow keys move the selection of the focused choice, tab moves focus
between choices, enter prints the selected action and exits. Escape, q and
ctrl-c quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDocument(cmd, global, opts, args[0])
		},
	}
	cmd.Flags().StringVar(&opts.backend, "backend", "ansi", "Terminal backend: ansi or tcell")
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "Serve /metrics and /frame on this address")
	return cmd
}

func runDocument(cmd *cobra.Command, global *globalOptions, opts *runOptions, path string) error {
	logger, closer, err := global.logger()
	if err != nil {
		return err
	}
	defer closer.Close()

	doc, err := document.Load(path)
	if err != nil {
		return err
	}
	theme, errs := doc.ResolveTheme()
	for _, e := range errs {
		logger.Warn("theme", "err", e)
	}

	be, err := openBackend(opts.backend, logger)
	if err != nil {
		return err
	}

	obs := metrics.New()
	engine := tuix.NewEngine(be,
		tuix.WithTheme(theme),
		tuix.WithLogger(logger),
		tuix.WithObserver(obs),
	)

	if opts.metricsAddr != "" {
		srv := &http.Server{
			Addr:              opts.metricsAddr,
			Handler:           newDebugHandler(engine, obs),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("serving metrics", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server", "err", err)
			}
		}()
		defer shutdown(srv, logger)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	s := newSession(doc, engine, logger)
	runErr := s.run(ctx, be.events(ctx))
	cancel()
	if err := be.Close(); err != nil {
		logger.Error("restore terminal", "err", err)
	}
	if runErr != nil {
		return runErr
	}
	if s.result != "" {
		fmt.Fprintln(cmd.OutOrStdout(), s.result)
	}
	return nil
}

func shutdown(srv *http.Server, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("metrics server shutdown", "err", err)
	}
}
