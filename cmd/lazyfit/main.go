// Command lazyfit is a terminal dashboard for daily activity metrics.
package main

import (
	"os"

	"github.com/kpumuk/lazyfit/internal/cmd"
)

// Build information, overridden at release time by GoReleaser.
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
	BuiltBy = ""
)

func main() {
	if err := cmd.Execute(Version, Commit, Date, BuiltBy); err != nil {
		os.Exit(1)
	}
}
