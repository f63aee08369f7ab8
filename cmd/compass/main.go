// Package main provides the entry point for the compass CLI.
package main

import (
	"context"
	"os"

	"github.com/compasshq/compass/internal/cli"
)

// Build information set via ldflags.
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	ctx := context.Background()
	info := cli.BuildInfo{Version: version, Commit: commit, Date: date}
	if err := cli.Execute(ctx, info); err != nil {
		os.Exit(cli.ExitCodeForError(err))
	}
}
