package main

import "time"

const (
	appName           = "kodi-bingebase-sync"
	defaultConfigFile = "config.yaml"
)

// Kodi notification title for sync and scrobble notices
const notificationTitle = "Bingebase"

// File names inside the state directory
const (
	syncLockFile = "sync.lock"
)

// Watch mode limits for the --interval override
const (
	minInterval = 1 * time.Hour
	maxInterval = 168 * time.Hour // 7 days
)

// credentialCheckInterval is how often watch mode re-reads the state file to
// notice a login made by another process.
const credentialCheckInterval = time.Minute
