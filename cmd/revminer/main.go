// main is the entry point for the revminer CLI.
package main

import (
	"github.com/reviewlab/revminer/cmd"
	"github.com/reviewlab/revminer/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
