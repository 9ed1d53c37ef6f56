package main

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-notes/internal/app"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			return app.Migrate(cmd.Context(), cfg.Storage, log)
		},
	}
}
