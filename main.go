// Studypace - a command-line study pacing tracker
package main

import (
	"os"

	"github.com/manav03panchal/studypace/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
