package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/FunnyShadow/pterodactyl-files/constants"
)

// Config keys used throughout pterodactyl-files.
const (
	// EggsPath is the directory holding the egg library.
	EggsPath = "eggs.path"

	// ServerDataPath is the working directory a resolved startup command
	// runs in inside a runtime container.
	ServerDataPath = "server.data"

	// DockerBinary is the docker client binary used for image operations.
	DockerBinary = "docker.binary"

	// DockerRegistry is the registry prefix runtime image tags are built
	// from, e.g. bluefunny/pterodactyl.
	DockerRegistry = "docker.registry"

	// DockerWorkers is the number of parallel docker invocations.
	DockerWorkers = "docker.workers"

	// APIListen is the address the egg distribution API binds to.
	APIListen = "api.listen"

	// AuthKeys are the tokens accepted for mutating API requests.
	AuthKeys = "auth.keys"

	// LogLevel is the logrus level the tool logs at.
	LogLevel = "log.level"
)

// LoadConfiguration sets the defaults and reads an optional config file. An
// empty path falls back to a config file in the working directory; a missing
// file is not an error, the defaults apply.
func LoadConfiguration(path string) error {
	viper.SetDefault(EggsPath, constants.DefaultEggsPath)
	viper.SetDefault(ServerDataPath, "/home/container")
	viper.SetDefault(DockerBinary, "docker")
	viper.SetDefault(DockerRegistry, "bluefunny/pterodactyl")
	viper.SetDefault(DockerWorkers, 4)
	viper.SetDefault(APIListen, ":8080")
	viper.SetDefault(LogLevel, "info")

	viper.SetEnvPrefix("PTERO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
		return viper.ReadInConfig()
	}

	viper.SetConfigName("config")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}
	return nil
}

// ContainsAuthKey checks wether the configured auth keys contain the provided key
func ContainsAuthKey(key string) bool {
	if key == "" {
		return false
	}
	for _, k := range viper.GetStringSlice(AuthKeys) {
		if k == key {
			return true
		}
	}
	return false
}
