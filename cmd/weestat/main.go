package main

import (
	"os"

	"github.com/weestat/weestat/internal/cmd"
)

// Version information - set at build time via ldflags
var (
	version   = "dev"
	buildDate = "unknown"
	gitCommit = "unknown"
)

func main() {
	cmd.Version = version
	cmd.BuildDate = buildDate
	cmd.GitCommit = gitCommit

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
