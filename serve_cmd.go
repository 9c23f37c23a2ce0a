package main

import (
	"github.com/spf13/cobra"

	"github.com/FunnyShadow/pterodactyl-files/api"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the egg library over HTTP for panel imports",
		RunE: func(cmd *cobra.Command, args []string) error {
			printTitle()
			checkStorage()
			return api.NewAPI().Listen()
		},
	}
}
