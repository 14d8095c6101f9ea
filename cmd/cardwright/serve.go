package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	httpAdapter "github.com/cardwright/cardwright/internal/adapters/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP rendering server",
	Long: `Starts the card builder in stateless server mode, exposing a JSON
rendering API over HTTP along with health and metrics endpoints.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		logger := newLogger(cmd)

		translator, err := newTranslator()
		if err != nil {
			fmt.Printf("Error configuring translator: %v\n", err)
			os.Exit(1)
		}

		handler := httpAdapter.NewHandler(httpAdapter.Config{
			Logger:     logger,
			Translator: translator,
			Registry:   prometheus.NewRegistry(),
		})

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("starting cardwright server", "addr", srv.Addr, "translator", translator != nil)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("starting shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("graceful shutdown did not complete", "err", err)
				if err := srv.Close(); err != nil {
					logger.Error("error killing server", "err", err)
				}
			}
			logger.Info("cardwright server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}
