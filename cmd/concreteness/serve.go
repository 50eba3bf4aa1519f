package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/EZ-Api/concreteness/internal/api"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the metrics over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	cmd.Flags().String("addr", "", "listen address (default from config)")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	addr, err := cmd.Flags().GetString("addr")
	if err != nil {
		return fmt.Errorf("failed to get addr flag: %w", err)
	}
	if addr == "" {
		addr = e.cfg.Server.Addr
	}

	handler := api.NewHandler(api.Config{
		Logger:   e.logger,
		Analyzer: e.analyzer,
		Table:    e.table,
		Defaults: e.cfg.Options(),
		Jobs:     e.cfg.Analysis.Jobs,
	})
	server := &http.Server{
		Addr:              addr,
		Handler:           api.NewServer(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		e.logger.Info("Starting server on %s", addr)
		e.logger.Info("Endpoints:")
		e.logger.Info("  GET  /health")
		e.logger.Info("  GET  /words/{word}")
		e.logger.Info("  POST /analyze")
		e.logger.Info("  POST /analyze/batch")
		e.logger.Info("  POST /avg")
		e.logger.Info("  POST /ratio")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	e.logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
