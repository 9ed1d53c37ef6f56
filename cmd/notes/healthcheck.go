package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-notes/internal/adapter"
)

// newHealthcheckCmd probes a running server, e.g. from a container
// HEALTHCHECK. The target defaults to the configured listen address.
func newHealthcheckCmd() *cobra.Command {
	var (
		url     string
		timeout time.Duration
		retries int
	)

	cmd := &cobra.Command{
		Use:   "healthcheck",
		Short: "Check that a running server and its database respond",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if url == "" {
				cfg, _, err := loadConfig(cmd)
				if err != nil {
					return err
				}
				url = adapter.BaseURLFromAddress(cfg.Server.HTTPAddress)
			}

			client := adapter.NewHTTPClient(adapter.HTTPClientConfig{
				BaseURL:    url,
				Timeout:    timeout,
				RetryCount: retries,
			})
			if err := client.Health(cmd.Context()); err != nil {
				return fmt.Errorf("%s is unhealthy: %w", url, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is healthy\n", url)
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "Base URL of the server (default: derived from --address)")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "Request timeout")
	cmd.Flags().IntVar(&retries, "retries", 0, "Retries on connection or 5xx errors")
	return cmd
}
