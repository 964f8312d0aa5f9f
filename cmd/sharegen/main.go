// Command sharegen prints platform-ready share posts for a piece of content.
package main

import (
	"os"

	"pulse-share/pkg/log"
)

func main() {
	log.SetDefault(log.New(log.Warn, os.Stderr))

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
