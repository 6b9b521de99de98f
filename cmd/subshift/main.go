package main

import (
	"os"

	"github.com/pvikhar/subshift/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
