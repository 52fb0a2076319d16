package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/disk-sim/disk-sim/internal/server"
	"github.com/disk-sim/disk-sim/sim"
)

var (
	serveAddr    string // Listen address
	serveMaxBody int64  // Request body limit in bytes
)

// serveCmd runs the JSON HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduling engine over a JSON HTTP API",
	Run: func(cmd *cobra.Command, args []string) {
		srv := server.New(
			server.WithMaxBodyBytes(serveMaxBody),
			server.WithSchedulerOptions(sim.SchedulerOptions{IncludeBoundaryStops: boundaryStops}),
		)
		httpServer := &http.Server{
			Addr:              serveAddr,
			Handler:           srv,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			logrus.Infof("Server listening on %s", serveAddr)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logrus.Fatalf("Server failed: %v", err)
			}
		}()

		<-ctx.Done()
		logrus.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logrus.Fatalf("Shutdown error: %v", err)
		}
		logrus.Info("Server stopped")
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "HTTP listen address")
	serveCmd.Flags().Int64Var(&serveMaxBody, "max-body-bytes", server.DefaultMaxBodyBytes, "Maximum simulate request body size")
	serveCmd.Flags().BoolVar(&boundaryStops, "boundary-stops", true, "Default for include_boundary_stops when a request omits it")

	rootCmd.AddCommand(serveCmd)
}
