package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/nfrund/safebite/internal/app"
	"github.com/nfrund/safebite/internal/config"
	"github.com/nfrund/safebite/internal/logging"
	"github.com/nfrund/safebite/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Run the HTTP server. Configuration is read from the environment and an
optional .env file; --addr overrides SERVER_ADDR.

The server stops gracefully on SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}
		if serveAddr != "" {
			cfg.Addr = serveAddr
		}
		logging.New(cfg.LogFormat, cfg.LogLevel)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		s, err := server.New(app.NewContainer(cfg))
		if err != nil {
			return err
		}
		if err := s.Init(ctx); err != nil {
			return err
		}
		return s.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides SERVER_ADDR)")
	rootCmd.AddCommand(serveCmd)
}
