package main

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-notes/internal/app"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log.Info().
				Str("version", buildInfo().BuildVersion()).
				Str("address", cfg.Server.HTTPAddress).
				Msg("starting notes server")

			a, err := app.New(cmd.Context(), cfg, log)
			if err != nil {
				log.Err(err).Msg("error creating application")
				return err
			}

			return a.Run()
		},
	}
}
