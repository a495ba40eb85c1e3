package main

import "fmt"

// Set with -ldflags "-X main.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func versionString() string {
	return fmt.Sprintf("star-badge %s (commit=%s, date=%s)", Version, Commit, Date)
}
