// Package main is the entry point for the condql CLI.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/zoobzio/condql/cmd/condql/command"
)

func main() {
	if err := command.GetRootCommand().Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
