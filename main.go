package main

import (
	"os"

	"github.com/anuvat/anuvat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
