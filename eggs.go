package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/FunnyShadow/pterodactyl-files/constants"
)

const (
	// Version of pterodactyl-files
	version = constants.Version
)

var (
	//logrus as a global var
	log = logrus.StandardLogger()

	configFile string
	logLevel   string
)

func rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:     "pterodactyl-files",
		Short:   "Egg and runtime image tooling for the Pterodactyl panel",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initialize()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to a config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(convertCommand())
	root.AddCommand(startCommand())
	root.AddCommand(serveCommand())
	root.AddCommand(imagesCommand())

	return root
}

func main() {
	if err := rootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}
