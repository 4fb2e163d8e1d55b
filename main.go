package main

import (
	"os"

	"github.com/nitrazepam01/jmx-history/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
