package startup

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand(t *testing.T) {
	env := map[string]string{
		"STARTUP":        "java -jar {{SERVER_JARFILE}}",
		"SERVER_JARFILE": "server.jar",
	}

	command, err := Command(env, false)
	require.NoError(t, err)
	assert.Equal(t, "java -jar server.jar", command)
}

func TestCommandWithoutStartup(t *testing.T) {
	_, err := Command(map[string]string{"SERVER_JARFILE": "server.jar"}, false)
	assert.ErrorIs(t, err, ErrNoStartup)

	// Empty is treated the same as unset.
	_, err = Command(map[string]string{"STARTUP": ""}, false)
	assert.ErrorIs(t, err, ErrNoStartup)
}

func TestCommandLenient(t *testing.T) {
	command, err := Command(map[string]string{"STARTUP": "java {{JAVA_OPTIONS}} -jar s.jar"}, true)
	require.NoError(t, err)
	assert.Equal(t, "java  -jar s.jar", command)
}

func TestRunWithoutStartup(t *testing.T) {
	t.Setenv("STARTUP", "")

	code, err := Run(context.Background(), t.TempDir(), false)
	assert.ErrorIs(t, err, ErrNoStartup)
	assert.NotEqual(t, 0, code)
}

func TestRunPropagatesExitCode(t *testing.T) {
	t.Setenv("STARTUP", "exit {{EXIT_CODE}}")
	t.Setenv("EXIT_CODE", "3")

	code, err := Run(context.Background(), t.TempDir(), false)
	require.NoError(t, err)
	assert.Equal(t, 3, code)
}

func TestRunSuccess(t *testing.T) {
	t.Setenv("STARTUP", "true")

	code, err := Run(context.Background(), t.TempDir(), false)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}
