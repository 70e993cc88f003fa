package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/chapterize/internal/config"
	"github.com/jackzampolin/chapterize/internal/home"
	"github.com/jackzampolin/chapterize/internal/server"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Chapterize server",
	Long: `Start the Chapterize HTTP server.

The server accepts PDF uploads, manages their tables of contents, and runs
split jobs in the background. A default config file is written to the home
directory on first run.

Examples:
  chapterize serve                    # Start on default port 8080
  chapterize serve --port 3000        # Start on custom port
  chapterize serve --host 0.0.0.0     # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Set up logger
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		// Get home directory
		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		// Seed a config file on first run
		if cfgFile == "" && !h.ConfigExists() {
			if err := config.WriteDefault(h.ConfigPath()); err != nil {
				return err
			}
			logger.Info("wrote default config", "path", h.ConfigPath())
		}

		cfgPath := cfgFile
		if cfgPath == "" {
			cfgPath = h.ConfigPath()
		}
		cm, err := config.NewManager(cfgPath)
		if err != nil {
			return err
		}
		cm.WatchConfig()

		cfg := cm.Get()
		host := serveHost
		if host == "" {
			host = cfg.Server.Host
		}
		port := servePort
		if port == "" {
			port = cfg.Server.Port
		}

		// Create server
		srv, err := server.New(server.Config{
			Host:          host,
			Port:          port,
			Home:          h,
			ConfigManager: cm,
			Logger:        logger,
		})
		if err != nil {
			return err
		}

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to (default from config)")
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (default from config)")

	rootCmd.AddCommand(serveCmd)
}
