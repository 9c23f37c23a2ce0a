package startup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	env := map[string]string{
		"SERVER_JARFILE": "server.jar",
		"MIN_MEM":        "512M",
		"MAX_MEM":        "4G",
		"a":              "1",
		"b":              "2",
	}

	tests := []struct {
		name     string
		template string
		expected string
	}{
		{"no placeholders", "java -jar server.jar nogui", "java -jar server.jar nogui"},
		{"empty template", "", ""},
		{"single placeholder", "java -jar {{SERVER_JARFILE}}", "java -jar server.jar"},
		{"multiple placeholders", "java -Xms{{MIN_MEM}} -Xmx{{MAX_MEM}} -jar {{SERVER_JARFILE}}", "java -Xms512M -Xmx4G -jar server.jar"},
		{"separated placeholders", "{{a}}-{{b}}", "1-2"},
		{"adjacent placeholders", "{{a}}{{b}}", "12"},
		{"padded placeholder", "{{ SERVER_JARFILE }}", "server.jar"},
		{"shell variables pass through", "java ${OPTIONS} -jar {{SERVER_JARFILE}}", "java ${OPTIONS} -jar server.jar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Resolve(tt.template, env)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestResolveDottedToken(t *testing.T) {
	env := map[string]string{"SERVER_BUILD_DEFAULT_PORT": "25565"}

	out, err := Resolve("--port {{server.build.default.port}}", env)
	require.NoError(t, err)
	assert.Equal(t, "--port 25565", out)
}

func TestResolveMissingVariable(t *testing.T) {
	_, err := Resolve("java -jar {{SERVER_JARFILE}}", map[string]string{})
	require.Error(t, err)

	var missing MissingVariableError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "SERVER_JARFILE", missing.Variable)
}

func TestResolveLenient(t *testing.T) {
	env := map[string]string{"MAX_MEM": "4G"}

	out := ResolveLenient("java -Xmx{{MAX_MEM}} {{JAVA_OPTIONS}} -jar s.jar", env)
	assert.Equal(t, "java -Xmx4G  -jar s.jar", out)
}

func TestSnapshot(t *testing.T) {
	env := Snapshot([]string{"STARTUP=java -jar {{SERVER_JARFILE}}", "EMPTY=", "VALUE=a=b", "garbage"})

	assert.Equal(t, "java -jar {{SERVER_JARFILE}}", env["STARTUP"])
	assert.Equal(t, "", env["EMPTY"])
	assert.Equal(t, "a=b", env["VALUE"])
	assert.NotContains(t, env, "garbage")
}
