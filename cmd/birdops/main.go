// Package main is the entry point for the birdops CLI.
package main

import (
	"os"

	"github.com/nomnemo/swin-tiny-seabird-classifier/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
