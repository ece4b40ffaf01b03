// Copyright (c) Axiom Studio AI (axiomstudio.ai)

package main

import (
	"fmt"
	"os"

	"corpstrack/internal/corpstrack"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	corpstrack.SetVersionInfo(version, commit, date)
	if err := corpstrack.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
