package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-notes/models"
)

func buildInfo() models.AppBuildInfo {
	orNA := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}
	return models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info := buildInfo()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", info.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", info.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", info.BuildCommit())
		},
	}
}
