package main

import (
	"os"

	"github.com/mhr3/bytekit/cmd/bytestr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
