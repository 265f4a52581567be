// Command taskline is a line-command task tracker.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(&globalFlags{}).Execute(); err != nil {
		os.Exit(1)
	}
}
