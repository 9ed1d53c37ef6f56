package main

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "notes",
		Short: "A small multi-user notes web application",
		Long: `notes serves an HTML notes application: users sign up, log in and
manage their own notes, each addressed by a unique slug.

Configuration comes from environment variables (and a .env file), flags,
an optional JSON or YAML file and built-in defaults, in that order.`,
		SilenceUsage: true,
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newServeCmd(), newMigrateCmd(), newHealthcheckCmd(), newVersionCmd())
	return root
}

// loadConfig merges the configuration sources and builds the logger
// configured by it.
func loadConfig(cmd *cobra.Command) (*config.StructuredConfig, *logger.Logger, error) {
	cfg, err := config.GetStructuredConfig(cmd.Flags())
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.NewLoggerWithLevel(cfg.App.Name, cfg.App.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	return cfg, log, nil
}
