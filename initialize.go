package main

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/FunnyShadow/pterodactyl-files/config"
	"github.com/FunnyShadow/pterodactyl-files/constants"
)

func printTitle() {
	log.Info("+ ------------------------------------ +")
	log.Info("|  pterodactyl-files " + version + "             |")
	log.Info("|  Eggs and images for Pterodactyl     |")
	log.Info("+ ------------------------------------ +")
}

// initialize loads the configuration and applies the requested log level. The
// flag wins over the config file.
func initialize() error {
	if err := config.LoadConfiguration(configFile); err != nil {
		return err
	}

	requested := logLevel
	if requested == "" {
		requested = viper.GetString(config.LogLevel)
	}
	level, err := logrus.ParseLevel(strings.ToLower(requested))
	if err != nil {
		return err
	}
	log.SetLevel(level)

	return nil
}

// checkStorage makes sure the configured eggs directory exists.
func checkStorage() {
	path := viper.GetString(config.EggsPath)
	if _, err := os.Stat(path); err != nil {
		log.WithField("path", path).Warn("Eggs directory is missing, generating now.")
		if err := os.MkdirAll(path, constants.DefaultFolderPerms); err != nil {
			log.WithField("path", path).WithError(err).Error("Failed to create the eggs directory.")
		}
	}
}
