package main

import (
	"os"

	"github.com/gomsv/gomsv/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
