package main

import (
	"os"

	"github.com/brayanj4y/code-assist/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
