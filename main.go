package main

import (
	"os"

	"github.com/fablingo/fablingo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
