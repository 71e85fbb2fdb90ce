// Package main provides the mazo CLI.
package main

import (
	"os"

	"github.com/mazo-labs/mazo/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
