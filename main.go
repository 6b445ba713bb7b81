// Package main is the synscapes command.
package main

import (
	"fmt"
	"os"

	"github.com/nvr-ai/synscapes/cli"
)

func main() {
	if err := cli.NewApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
