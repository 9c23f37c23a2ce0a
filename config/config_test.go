package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigurationDefaults(t *testing.T) {
	require.NoError(t, LoadConfiguration(""))

	assert.Equal(t, "docker", viper.GetString(DockerBinary))
	assert.Equal(t, "bluefunny/pterodactyl", viper.GetString(DockerRegistry))
	assert.Equal(t, 4, viper.GetInt(DockerWorkers))
	assert.Equal(t, "/home/container", viper.GetString(ServerDataPath))
	assert.Equal(t, "info", viper.GetString(LogLevel))
}

func TestContainsAuthKey(t *testing.T) {
	viper.Set(AuthKeys, []string{"first", "second"})

	assert.True(t, ContainsAuthKey("first"))
	assert.True(t, ContainsAuthKey("second"))
	assert.False(t, ContainsAuthKey("third"))
	assert.False(t, ContainsAuthKey(""))
}
