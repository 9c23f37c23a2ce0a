package constants

import "os"

// Version is the current pterodactyl-files version.
const Version = "0.1.0"

// DefaultFilePerms are the file perms used for created files.
const DefaultFilePerms os.FileMode = 0644

// DefaultFolderPerms are the file perms used for created folders.
const DefaultFolderPerms os.FileMode = 0744

// DefaultEggsPath is the directory scanned for egg documents when no other
// location is configured.
const DefaultEggsPath = "eggs"

// StartupVar is the environment variable carrying the startup template inside
// a runtime container.
const StartupVar = "STARTUP"
