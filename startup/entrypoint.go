package startup

import (
	"context"
	"errors"
	"os"
	"os/exec"

	log "github.com/sirupsen/logrus"

	"github.com/FunnyShadow/pterodactyl-files/constants"
)

// ErrNoStartup is returned when the container environment carries no startup
// template. A container without one must not come up looking healthy.
var ErrNoStartup = errors.New("STARTUP is not set, refusing to start")

// Command resolves the container's startup command from the provided
// environment snapshot.
func Command(env map[string]string, lenient bool) (string, error) {
	template := env[constants.StartupVar]
	if template == "" {
		return "", ErrNoStartup
	}
	if lenient {
		return ResolveLenient(template, env), nil
	}
	return Resolve(template, env)
}

// Run resolves the startup command and executes it as the container's main
// process. It blocks until the command exits and returns the child's exit
// code; that code is the container's exit status.
func Run(ctx context.Context, dir string, lenient bool) (int, error) {
	command, err := Command(Snapshot(os.Environ()), lenient)
	if err != nil {
		return 1, err
	}

	log.WithField("command", command).Info("Starting server process.")

	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", command)
	if _, err := os.Stat(dir); err == nil {
		cmd.Dir = dir
	} else {
		log.WithField("dir", dir).Warn("Server directory is missing, starting in the working directory.")
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 1, err
	}
	return 0, nil
}
