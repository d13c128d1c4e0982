package main

import (
	"os"

	"github.com/seedforge-io/seedforge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
