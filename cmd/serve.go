package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"trithemius-backend/handlers"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}

	cmd.Flags().Int("port", 0, "port to listen on (overrides config and PORT)")
	cmd.Flags().String("addr", "", "address to bind")
	_ = a.v.BindPFlag("server.port", cmd.Flags().Lookup("port"))
	_ = a.v.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	return cmd
}

func (a *app) serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	gin.SetMode(a.cfg.Server.Mode)

	handler := handlers.NewCipherHandler(a.system, a.registry, a.logger, a.cfg.Cipher.MaxText)
	router := handlers.NewRouter(a.cfg.Server, handler, a.logger)

	srv := &http.Server{
		Addr:              a.cfg.ListenAddr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	a.logger.Info("server starting",
		"addr", srv.Addr,
		"shift", a.system.Shift(),
		"padding", a.system.Padding().String(),
		"operations", len(a.registry.List()))
	for _, route := range router.Routes() {
		a.logger.Debug("route", "method", route.Method, "path", route.Path)
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	a.logger.Info("server stopped")
	return nil
}
