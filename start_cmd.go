package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/FunnyShadow/pterodactyl-files/config"
	"github.com/FunnyShadow/pterodactyl-files/startup"
)

func startCommand() *cobra.Command {
	var lenient bool

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Resolve STARTUP and run it as the container's main process",
		Run: func(cmd *cobra.Command, args []string) {
			code, err := startup.Run(cmd.Context(), viper.GetString(config.ServerDataPath), lenient)
			if err != nil {
				log.WithError(err).Fatal("Unable to start the server process.")
			}
			os.Exit(code)
		},
	}

	cmd.Flags().BoolVar(&lenient, "lenient", false, "substitute empty strings for unset startup variables")

	return cmd
}
